package theme

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Color is one RGB value of a palette.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the color the way terminal styling libraries want it.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme is a named palette. Custom themes deserialize from the same shape
// the built-ins are declared in.
type Theme struct {
	Name       string `json:"name"`
	Background Color  `json:"background"`
	Foreground Color  `json:"foreground"`
	Primary    Color  `json:"primary"`
	Secondary  Color  `json:"secondary"`
	Accent     Color  `json:"accent"`
	Surface0   Color  `json:"surface0"`
	Surface1   Color  `json:"surface1"`
	Surface2   Color  `json:"surface2"`
	Text       Color  `json:"text"`
	Subtext    Color  `json:"subtext"`
	Red        Color  `json:"red"`
	Yellow     Color  `json:"yellow"`
	Green      Color  `json:"green"`
	Blue       Color  `json:"blue"`
	Mauve      Color  `json:"mauve"`
	Lavender   Color  `json:"lavender"`
}

// DefaultName is the theme used when nothing is configured.
const DefaultName = "catppuccin-mocha"

var builtin = []Theme{
	{
		Name:       "catppuccin-mocha",
		Background: Color{17, 17, 27},
		Foreground: Color{205, 214, 244},
		Primary:    Color{203, 166, 247},
		Secondary:  Color{180, 190, 254},
		Accent:     Color{137, 220, 235},
		Surface0:   Color{49, 50, 68},
		Surface1:   Color{69, 71, 90},
		Surface2:   Color{88, 91, 112},
		Text:       Color{205, 214, 244},
		Subtext:    Color{186, 194, 222},
		Red:        Color{243, 139, 168},
		Yellow:     Color{250, 179, 135},
		Green:      Color{166, 227, 161},
		Blue:       Color{137, 220, 235},
		Mauve:      Color{203, 166, 247},
		Lavender:   Color{180, 190, 254},
	},
	{
		Name:       "catppuccin-latte",
		Background: Color{239, 241, 245},
		Foreground: Color{76, 79, 105},
		Primary:    Color{136, 57, 239},
		Secondary:  Color{114, 135, 253},
		Accent:     Color{4, 165, 229},
		Surface0:   Color{204, 208, 218},
		Surface1:   Color{188, 192, 204},
		Surface2:   Color{172, 176, 190},
		Text:       Color{76, 79, 105},
		Subtext:    Color{92, 95, 119},
		Red:        Color{210, 15, 57},
		Yellow:     Color{254, 100, 11},
		Green:      Color{64, 160, 43},
		Blue:       Color{4, 165, 229},
		Mauve:      Color{136, 57, 239},
		Lavender:   Color{114, 135, 253},
	},
	{
		Name:       "dracula",
		Background: Color{40, 42, 54},
		Foreground: Color{248, 248, 242},
		Primary:    Color{189, 147, 249},
		Secondary:  Color{80, 250, 123},
		Accent:     Color{255, 184, 108},
		Surface0:   Color{68, 71, 90},
		Surface1:   Color{98, 114, 164},
		Surface2:   Color{139, 233, 253},
		Text:       Color{248, 248, 242},
		Subtext:    Color{98, 114, 164},
		Red:        Color{255, 85, 85},
		Yellow:     Color{241, 250, 140},
		Green:      Color{80, 250, 123},
		Blue:       Color{139, 233, 253},
		Mauve:      Color{189, 147, 249},
		Lavender:   Color{139, 233, 253},
	},
	{
		Name:       "gruvbox-dark",
		Background: Color{40, 40, 40},
		Foreground: Color{235, 219, 178},
		Primary:    Color{211, 134, 155},
		Secondary:  Color{142, 192, 124},
		Accent:     Color{254, 128, 25},
		Surface0:   Color{60, 56, 54},
		Surface1:   Color{80, 73, 69},
		Surface2:   Color{102, 92, 84},
		Text:       Color{235, 219, 178},
		Subtext:    Color{168, 153, 132},
		Red:        Color{251, 73, 52},
		Yellow:     Color{250, 189, 47},
		Green:      Color{142, 192, 124},
		Blue:       Color{131, 165, 152},
		Mauve:      Color{211, 134, 155},
		Lavender:   Color{131, 165, 152},
	},
	{
		Name:       "nord",
		Background: Color{46, 52, 64},
		Foreground: Color{236, 239, 244},
		Primary:    Color{129, 161, 193},
		Secondary:  Color{136, 192, 208},
		Accent:     Color{163, 190, 140},
		Surface0:   Color{59, 66, 82},
		Surface1:   Color{67, 76, 94},
		Surface2:   Color{76, 86, 106},
		Text:       Color{236, 239, 244},
		Subtext:    Color{229, 233, 240},
		Red:        Color{191, 97, 106},
		Yellow:     Color{235, 203, 139},
		Green:      Color{163, 190, 140},
		Blue:       Color{129, 161, 193},
		Mauve:      Color{180, 142, 173},
		Lavender:   Color{136, 192, 208},
	},
}

// Manager holds every known theme in alphabetical order and tracks which
// one is active.
type Manager struct {
	themes []Theme
	index  int
}

// NewManager combines the built-in palettes with custom ones. A custom
// theme with a built-in's name replaces it.
func NewManager(custom []Theme) *Manager {
	byName := map[string]Theme{}
	for _, t := range builtin {
		byName[t.Name] = t
	}
	for _, t := range custom {
		byName[t.Name] = t
	}

	m := &Manager{themes: make([]Theme, 0, len(byName))}
	for _, t := range byName {
		m.themes = append(m.themes, t)
	}
	sort.Slice(m.themes, func(i, j int) bool { return m.themes[i].Name < m.themes[j].Name })
	m.Select(DefaultName)
	return m
}

// Names lists every available theme in cycle order.
func (m *Manager) Names() []string {
	names := make([]string, len(m.themes))
	for i, t := range m.themes {
		names[i] = t.Name
	}
	return names
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	return m.themes[m.index]
}

// Select activates the named theme and reports whether it exists.
func (m *Manager) Select(name string) bool {
	for i, t := range m.themes {
		if t.Name == name {
			m.index = i
			return true
		}
	}
	return false
}

// Cycle advances to the next theme alphabetically, wrapping at the end.
func (m *Manager) Cycle() Theme {
	m.index = (m.index + 1) % len(m.themes)
	return m.themes[m.index]
}

// LoadCustom reads every .json palette under dir. A missing dir just
// means no custom themes. A file that fails to decode fails the whole
// load; callers warn and fall back to the built-ins.
func LoadCustom(fsys afero.Fs, dir string) ([]Theme, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil
	}

	var themes []Theme
	for _, fi := range infos {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, fi.Name())
		bs, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading theme %s: %w", path, err)
		}
		var t Theme
		if err := json.Unmarshal(bs, &t); err != nil {
			return nil, fmt.Errorf("parsing theme %s: %w", path, err)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("theme %s has no name", path)
		}
		themes = append(themes, t)
	}
	return themes, nil
}
