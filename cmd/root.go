package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskpad/taskpad/internal/config"
	"github.com/taskpad/taskpad/internal/theme"
	"github.com/taskpad/taskpad/internal/tui"
	"github.com/taskpad/taskpad/pkg/persist"
	"github.com/taskpad/taskpad/pkg/task"
)

var (
	cfgFile    string
	verbose    bool
	listThemes bool
)

var rootCmd = &cobra.Command{
	Use:   "taskpad",
	Short: "taskpad is a keyboard-driven todo list for the terminal",
	Long: `taskpad keeps a nested todo list in a single json or yaml file.
Tags, priorities and due dates are picked straight out of the task text:

  buy milk tomorrow 5pm #errands
  urgent: review the deploy #work`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		HandleFatalError("Error: "+err.Error(), err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.config/taskpad/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().String("theme", "", "theme to start with")
	rootCmd.Flags().String("data", "", "task file to open")
	rootCmd.Flags().BoolVar(&listThemes, "list-themes", false, "list available theme names and exit")
}

func run(cmd *cobra.Command, args []string) error {
	v := viper.New()
	_ = v.BindPFlag("theme", cmd.Flags().Lookup("theme"))
	_ = v.BindPFlag("data.file", cmd.Flags().Lookup("data"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	verbose = verbose || cfg.Verbose

	fsys := afero.NewOsFs()

	custom, err := theme.LoadCustom(fsys, config.ThemesDir())
	if err != nil {
		PrintError("could not load custom themes, using the built-in ones", err)
	}
	themes := theme.NewManager(custom)
	if listThemes {
		for _, name := range themes.Names() {
			fmt.Println(name)
		}
		return nil
	}
	if !themes.Select(cfg.Theme) {
		PrintError(fmt.Sprintf("unknown theme %q, using %s", cfg.Theme, theme.DefaultName), nil)
	}

	file := persist.NewFile(fsys, cfg.Data.File)
	store, err := file.Load()
	warning := ""
	if err != nil {
		if !errors.Is(err, persist.ErrCorrupt) {
			return fmt.Errorf("loading %s: %w", cfg.Data.File, err)
		}
		store = task.NewStore()
		warning = fmt.Sprintf("%s is unreadable, starting empty", cfg.Data.File)
		if bak := backupCorrupt(fsys, cfg.Data.File); bak != "" {
			warning = fmt.Sprintf("%s is unreadable, starting empty (old file kept at %s)", cfg.Data.File, bak)
		}
		PrintError(warning, err)
	}

	if path := os.Getenv("TASKPAD_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "taskpad")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(tui.New(store, file, themes, warning), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// backupCorrupt copies an unreadable task file aside so the session
// never overwrites it. Returns the backup path, or "" when nothing
// could be preserved.
func backupCorrupt(fsys afero.Fs, path string) string {
	bs, err := afero.ReadFile(fsys, path)
	if err != nil {
		return ""
	}
	bak := path + ".corrupt"
	if err := afero.WriteFile(fsys, bak, bs, 0o644); err != nil {
		return ""
	}
	return bak
}
