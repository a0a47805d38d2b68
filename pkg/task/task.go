package task

import (
	"time"

	"github.com/google/uuid"
)

// ID identifies a task for its whole life, across sessions.
type ID = string

// NewID returns a fresh random identifier.
func NewID() ID {
	return uuid.NewString()
}

// Priority ranks how important a task is.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case High, Medium, Low:
		return true
	}
	return false
}

// Cycle returns the level after p in the high, medium, low rotation.
func (p Priority) Cycle() Priority {
	switch p {
	case High:
		return Medium
	case Medium:
		return Low
	}
	return High
}

// Info is everything a task carries besides its place in the tree.
type Info struct {
	Title    string
	Done     bool
	Priority Priority
	Due      *time.Time
	Tags     []string
	Created  time.Time
}

// Overdue reports whether the task is pending with a due date in the past.
func (i Info) Overdue(now time.Time) bool {
	return !i.Done && i.Due != nil && i.Due.Before(now)
}

// Task is a node of the value tree exchanged with storage: an identifier,
// the task's fields and its subtasks in display order.
type Task struct {
	ID ID
	Info
	Children []Task
}
