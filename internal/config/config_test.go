package config

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/taskpad/taskpad/internal/theme"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/config")
	t.Setenv("XDG_DATA_HOME", "/nonexistent/data")

	v := viper.New()
	v.SetFs(afero.NewMemMapFs())

	cfg, err := Load(v, "")
	is.NoErr(err)
	is.Equal(cfg.Theme, theme.DefaultName)
	is.Equal(cfg.Data.File, "/nonexistent/data/taskpad/tasks.json")
	is.Equal(cfg.Verbose, false)
}

func TestLoad_File(t *testing.T) {
	is := is.New(t)
	t.Setenv("XDG_CONFIG_HOME", "/conf")

	fs := afero.NewMemMapFs()
	body := "theme: nord\ndata:\n  file: /data/tasks.yaml\nverbose: true\n"
	is.NoErr(afero.WriteFile(fs, "/conf/taskpad/config.yaml", []byte(body), 0o644))

	v := viper.New()
	v.SetFs(fs)

	cfg, err := Load(v, "")
	is.NoErr(err)
	is.Equal(cfg.Theme, "nord")
	is.Equal(cfg.Data.File, "/data/tasks.yaml")
	is.Equal(cfg.Verbose, true)
}

func TestLoad_ExplicitFile(t *testing.T) {
	is := is.New(t)

	fs := afero.NewMemMapFs()
	is.NoErr(afero.WriteFile(fs, "/elsewhere/my.yaml", []byte("theme: dracula\n"), 0o644))

	v := viper.New()
	v.SetFs(fs)

	cfg, err := Load(v, "/elsewhere/my.yaml")
	is.NoErr(err)
	is.Equal(cfg.Theme, "dracula")
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	is := is.New(t)

	v := viper.New()
	v.SetFs(afero.NewMemMapFs())

	_, err := Load(v, "/elsewhere/missing.yaml")
	is.True(err != nil)
}

func TestLoad_Environment(t *testing.T) {
	is := is.New(t)
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/config")
	t.Setenv("TASKPAD_THEME", "gruvbox-dark")
	t.Setenv("TASKPAD_DATA_FILE", "/env/tasks.json")

	v := viper.New()
	v.SetFs(afero.NewMemMapFs())

	cfg, err := Load(v, "")
	is.NoErr(err)
	is.Equal(cfg.Theme, "gruvbox-dark")
	is.Equal(cfg.Data.File, "/env/tasks.json")
}

func TestLoad_RejectsEmptyDataFile(t *testing.T) {
	is := is.New(t)
	t.Setenv("XDG_CONFIG_HOME", "/conf")

	fs := afero.NewMemMapFs()
	is.NoErr(afero.WriteFile(fs, "/conf/taskpad/config.yaml", []byte("data:\n  file: \"\"\n"), 0o644))

	v := viper.New()
	v.SetFs(fs)

	_, err := Load(v, "")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "invalid config"))
}

func TestPaths_XDG(t *testing.T) {
	is := is.New(t)
	t.Setenv("XDG_CONFIG_HOME", "/xdg/conf")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	is.Equal(Dir(), "/xdg/conf/taskpad")
	is.Equal(ThemesDir(), "/xdg/conf/taskpad/themes")
	is.Equal(DefaultDataFile(), "/xdg/data/taskpad/tasks.json")
}
