package persist

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/spf13/afero"

	"github.com/taskpad/taskpad/pkg/task"
)

// wednesday pins the clock to Wednesday 3 March 2021, 10:00.
var wednesday = time.Date(2021, time.March, 3, 10, 0, 0, 0, time.Local)

func seeded(t *testing.T) *task.Store {
	t.Helper()
	s := task.NewStore()
	a, err := s.Add("URGENT: ship the release #launch tomorrow at 5pm", wednesday)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddSub(a, "write the changelog", wednesday); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("sweep the garage", wednesday); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFile_RoundTrip(t *testing.T) {
	for _, name := range []string{"tasks.json", "tasks.yaml", "tasks.yml"} {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			fs := afero.NewMemMapFs()
			f := NewFile(fs, "/data/"+name)

			s := seeded(t)
			is.NoErr(f.Save(s))

			loaded, err := f.Load()
			is.NoErr(err)
			is.True(reflect.DeepEqual(loaded.Tree(), s.Tree()))
		})
	}
}

func TestFile_MissingFileIsEmptyStore(t *testing.T) {
	is := is.New(t)

	f := NewFile(afero.NewMemMapFs(), "/data/tasks.json")
	s, err := f.Load()
	is.NoErr(err)
	is.Equal(s.Len(), 0)
}

func TestFile_CorruptData(t *testing.T) {
	for name, body := range map[string]string{
		"not json":         `{{{`,
		"bad due date":     `[{"id":"a","title":"x","due":"not-a-date"}]`,
		"missing title":    `[{"id":"a"}]`,
		"unknown priority": `[{"id":"a","title":"x","priority":"critical"}]`,
		"duplicate ids":    `[{"id":"a","title":"x"},{"id":"a","title":"y"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			fs := afero.NewMemMapFs()
			is.NoErr(afero.WriteFile(fs, "/data/tasks.json", []byte(body), 0o644))

			_, err := NewFile(fs, "/data/tasks.json").Load()
			is.True(errors.Is(err, ErrCorrupt))
		})
	}
}

func TestFile_ForwardReadable(t *testing.T) {
	is := is.New(t)

	// fields this version does not know about are ignored, not fatal
	body := `[{"id":"a","title":"x","priority":"low","color":"teal","nested":{"k":1}}]`
	fs := afero.NewMemMapFs()
	is.NoErr(afero.WriteFile(fs, "/data/tasks.json", []byte(body), 0o644))

	s, err := NewFile(fs, "/data/tasks.json").Load()
	is.NoErr(err)
	is.Equal(s.Len(), 1)

	info, ok := s.Get("a")
	is.True(ok)
	is.Equal(info.Title, "x")
	is.Equal(info.Priority, task.Low)
}

func TestFile_HandWrittenDefaults(t *testing.T) {
	is := is.New(t)

	// the minimum a human needs to type: priority falls back to medium
	body := `[{"id":"a","title":"call mom","due":"2021-03-05T14:00:00Z"}]`
	fs := afero.NewMemMapFs()
	is.NoErr(afero.WriteFile(fs, "/data/tasks.json", []byte(body), 0o644))

	s, err := NewFile(fs, "/data/tasks.json").Load()
	is.NoErr(err)

	info, _ := s.Get("a")
	is.Equal(info.Priority, task.Medium)
	is.True(info.Due != nil)
	is.True(info.Due.Equal(time.Date(2021, time.March, 5, 14, 0, 0, 0, time.UTC)))
}

func TestFile_SaveCreatesParentDirs(t *testing.T) {
	is := is.New(t)

	fs := afero.NewMemMapFs()
	f := NewFile(fs, "/home/me/.local/share/taskpad/tasks.json")
	is.NoErr(f.Save(task.NewStore()))

	ok, err := afero.Exists(fs, "/home/me/.local/share/taskpad/tasks.json")
	is.NoErr(err)
	is.True(ok)
}

func TestFile_EmptyStoreRoundTrip(t *testing.T) {
	is := is.New(t)

	fs := afero.NewMemMapFs()
	f := NewFile(fs, "/data/tasks.json")
	is.NoErr(f.Save(task.NewStore()))

	s, err := f.Load()
	is.NoErr(err)
	is.Equal(s.Len(), 0)
}
