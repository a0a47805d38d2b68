package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskpad/taskpad/pkg/persist"
	"github.com/taskpad/taskpad/pkg/task"
)

var benchTotal int

// benchCmd generates a large store and times a full save/load cycle,
// mostly to keep an eye on how the file format scales.
var benchCmd = &cobra.Command{
	Use:    "bench",
	Short:  "Time save/load of a generated task file",
	Hidden: true,
	RunE:   runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchTotal, "tasks", 100000, "number of tasks to generate")
	rootCmd.AddCommand(benchCmd)
}

var (
	benchVerbs = []string{"write", "review", "ship", "plan", "clean", "email", "fix", "read"}
	benchNouns = []string{"the report", "the deck", "chapter 4", "the inbox", "the garage", "the release", "the tests"}
	benchTags  = []string{"", " #work", " #home", " #errands"}
	benchDates = []string{"", " tomorrow", " in 3 days", " next fri 9am", " in 2 weeks"}
)

func runBench(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()
	path := filepath.Join(os.TempDir(), "taskpad-bench.json")
	defer func() { _ = fsys.Remove(path) }()

	now := time.Now()
	store := task.NewStore()
	roots := make([]task.ID, 0, benchTotal)
	for i := 0; i < benchTotal; i++ {
		raw := pick(benchVerbs) + " " + pick(benchNouns) + pick(benchTags) + pick(benchDates)
		var (
			id  task.ID
			err error
		)
		// roughly a quarter of the tasks nest under an earlier one
		if len(roots) > 0 && rand.IntN(4) == 0 {
			id, err = store.AddSub(pick(roots), raw, now)
		} else {
			id, err = store.Add(raw, now)
			roots = append(roots, id)
		}
		if err != nil {
			return err
		}
	}

	file := persist.NewFile(fsys, path)
	writeTime, err := measure(func() error { return file.Save(store) })
	if err != nil {
		return err
	}
	readTime, err := measure(func() error {
		_, err := file.Load()
		return err
	})
	if err != nil {
		return err
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}

	fmt.Printf("Tasks: %d\n", store.Len())
	fmt.Printf("File size: %.1fMB\n", float64(info.Size())/1024/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
	return nil
}

func measure(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

func pick[T any](from []T) T {
	return from[rand.IntN(len(from))]
}
