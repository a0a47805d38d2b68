package theme

import (
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/afero"
)

func TestManager_Defaults(t *testing.T) {
	is := is.New(t)

	m := NewManager(nil)
	is.Equal(m.Current().Name, DefaultName)
	is.Equal(m.Names(), []string{
		"catppuccin-latte",
		"catppuccin-mocha",
		"dracula",
		"gruvbox-dark",
		"nord",
	})
}

func TestManager_Select(t *testing.T) {
	is := is.New(t)

	m := NewManager(nil)
	is.True(m.Select("nord"))
	is.Equal(m.Current().Name, "nord")
	is.True(!m.Select("solarized"))
	is.Equal(m.Current().Name, "nord")
}

func TestManager_CycleWraps(t *testing.T) {
	is := is.New(t)

	m := NewManager(nil)
	seen := map[string]bool{m.Current().Name: true}
	for i := 1; i < len(m.Names()); i++ {
		seen[m.Cycle().Name] = true
	}
	is.Equal(len(seen), len(m.Names()))

	// one more step is back to the start
	m.Select("nord")
	is.Equal(m.Cycle().Name, "catppuccin-latte")
}

func TestManager_CustomOverridesBuiltin(t *testing.T) {
	is := is.New(t)

	m := NewManager([]Theme{{Name: "nord", Background: Color{1, 2, 3}}})
	is.Equal(len(m.Names()), 5)
	is.True(m.Select("nord"))
	is.Equal(m.Current().Background, Color{1, 2, 3})
}

func TestLoadCustom(t *testing.T) {
	t.Run("reads json palettes", func(t *testing.T) {
		is := is.New(t)
		fs := afero.NewMemMapFs()
		body := `{"name":"midnight","background":{"r":10,"g":20,"b":30}}`
		is.NoErr(afero.WriteFile(fs, "/conf/themes/midnight.json", []byte(body), 0o644))
		is.NoErr(afero.WriteFile(fs, "/conf/themes/notes.txt", []byte("skip me"), 0o644))

		themes, err := LoadCustom(fs, "/conf/themes")
		is.NoErr(err)
		is.Equal(len(themes), 1)
		is.Equal(themes[0].Name, "midnight")
		is.Equal(themes[0].Background.Hex(), "#0a141e")
	})

	t.Run("missing dir is fine", func(t *testing.T) {
		is := is.New(t)
		themes, err := LoadCustom(afero.NewMemMapFs(), "/conf/themes")
		is.NoErr(err)
		is.Equal(len(themes), 0)
	})

	t.Run("broken palette fails the load", func(t *testing.T) {
		is := is.New(t)
		fs := afero.NewMemMapFs()
		is.NoErr(afero.WriteFile(fs, "/conf/themes/bad.json", []byte(`{`), 0o644))

		_, err := LoadCustom(fs, "/conf/themes")
		is.True(err != nil)
	})

	t.Run("nameless palette fails the load", func(t *testing.T) {
		is := is.New(t)
		fs := afero.NewMemMapFs()
		is.NoErr(afero.WriteFile(fs, "/conf/themes/anon.json", []byte(`{}`), 0o644))

		_, err := LoadCustom(fs, "/conf/themes")
		is.True(err != nil)
	})
}

func TestColorHex(t *testing.T) {
	is := is.New(t)
	is.Equal(Color{17, 17, 27}.Hex(), "#11111b")
	is.Equal(Color{255, 255, 255}.Hex(), "#ffffff")
	is.Equal(Color{0, 0, 0}.Hex(), "#000000")
}
