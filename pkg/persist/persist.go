package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/taskpad/taskpad/pkg/task"
)

// ErrCorrupt marks a data file that exists but cannot be read back into a
// valid tree. Callers should surface it and carry on with an empty store
// rather than overwrite the file or crash.
var ErrCorrupt = errors.New("data file is corrupt")

type Persistor interface {
	Save(*task.Store) error
	Load() (*task.Store, error)
}

// File persists the store to a single human-editable document, encoded as
// YAML when the path ends in .yaml or .yml and as indented JSON otherwise.
type File struct {
	fs   afero.Fs
	path string
}

func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// Save writes the whole tree, replacing the file atomically so that a
// crash mid-write cannot leave a truncated document behind.
func (f *File) Save(s *task.Store) error {
	records := encode(s.Tree())
	var bs []byte
	var err error
	if f.yaml() {
		bs, err = yaml.Marshal(records)
	} else {
		bs, err = json.MarshalIndent(records, "", "  ")
	}
	if err != nil {
		return err
	}
	return f.replace(bs)
}

// Load reads the file back into a store. A missing file is a fresh start,
// not an error; anything unreadable is reported as ErrCorrupt.
func (f *File) Load() (*task.Store, error) {
	bs, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		return task.NewStore(), nil
	}
	if err != nil {
		return nil, err
	}

	var records []record
	if f.yaml() {
		err = yaml.Unmarshal(bs, &records)
	} else {
		err = json.Unmarshal(bs, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	tasks, err := decode(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	s, err := task.NewStoreFromTree(tasks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return s, nil
}

func (f *File) yaml() bool {
	ext := filepath.Ext(f.path)
	return ext == ".yaml" || ext == ".yml"
}

func (f *File) replace(bs []byte) error {
	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := afero.TempFile(f.fs, dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(bs); err != nil {
		tmp.Close()
		f.fs.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		f.fs.Remove(tmp.Name())
		return err
	}
	return f.fs.Rename(tmp.Name(), f.path)
}
