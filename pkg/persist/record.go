package persist

import (
	"fmt"
	"time"

	"github.com/taskpad/taskpad/pkg/task"
)

// record is the durable shape of one task, nested the way the tree nests.
// The file is meant to be edited by hand, so everything optional
// disappears when empty and timestamps are plain RFC 3339 strings.
type record struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Done     bool     `json:"done" yaml:"done"`
	Priority string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Due      string   `json:"due,omitempty" yaml:"due,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Created  string   `json:"created,omitempty" yaml:"created,omitempty"`
	Subtasks []record `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`
}

func encode(tasks []task.Task) []record {
	out := make([]record, 0, len(tasks))
	for _, t := range tasks {
		r := record{
			ID:       t.ID,
			Title:    t.Title,
			Done:     t.Done,
			Priority: string(t.Priority),
			Tags:     t.Tags,
			Subtasks: encode(t.Children),
		}
		if t.Due != nil {
			r.Due = t.Due.Format(time.RFC3339Nano)
		}
		if !t.Created.IsZero() {
			r.Created = t.Created.Format(time.RFC3339Nano)
		}
		out = append(out, r)
	}
	return out
}

func decode(records []record) ([]task.Task, error) {
	out := make([]task.Task, 0, len(records))
	for _, r := range records {
		if r.Title == "" {
			return nil, fmt.Errorf("task %q has no title", r.ID)
		}
		prio := task.Priority(r.Priority)
		if prio == "" {
			prio = task.Medium
		}
		if !prio.Valid() {
			return nil, fmt.Errorf("task %q has unknown priority %q", r.ID, r.Priority)
		}
		info := task.Info{
			Title:    r.Title,
			Done:     r.Done,
			Priority: prio,
			Tags:     r.Tags,
		}
		if r.Due != "" {
			at, err := time.Parse(time.RFC3339Nano, r.Due)
			if err != nil {
				return nil, fmt.Errorf("task %q has a bad due date: %v", r.ID, err)
			}
			at = at.Local()
			info.Due = &at
		}
		if r.Created != "" {
			created, err := time.Parse(time.RFC3339Nano, r.Created)
			if err != nil {
				return nil, fmt.Errorf("task %q has a bad creation date: %v", r.ID, err)
			}
			info.Created = created.Local()
		}
		children, err := decode(r.Subtasks)
		if err != nil {
			return nil, err
		}
		out = append(out, task.Task{ID: r.ID, Info: info, Children: children})
	}
	return out, nil
}
