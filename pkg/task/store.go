package task

import (
	"errors"
	"strings"
	"time"

	"github.com/taskpad/taskpad/pkg/task/date"
)

// root is the sentinel parent of every top-level task. It never appears
// in nodes and never leaves the store.
const root ID = "root"

var (
	ErrIDExists    = errors.New("task with the given ID already exists")
	ErrNotFound    = errors.New("task not found")
	ErrEmptyTitle  = errors.New("task text is empty once cleaned")
	ErrInvalidDate = errors.New("not a recognized date")
)

// Store holds the whole task tree as an arena: one flat node table plus
// parent and ordered-children indexes. Tasks cannot hold pointers to each
// other if we want cheap serialization, so relationships live here.
type Store struct {
	nodes    map[ID]Info
	parent   map[ID]ID
	children map[ID][]ID
}

func NewStore() *Store {
	return &Store{
		nodes:    map[ID]Info{},
		parent:   map[ID]ID{},
		children: map[ID][]ID{root: {}},
	}
}

// Add creates a top-level task from raw text, running extraction on it.
// The returned ID is the only handle to the task callers should keep.
func (s *Store) Add(raw string, now time.Time) (ID, error) {
	return s.add(root, raw, now)
}

// AddSub creates a subtask at the end of parent's children.
func (s *Store) AddSub(parent ID, raw string, now time.Time) (ID, error) {
	if _, ok := s.nodes[parent]; !ok {
		return "", ErrNotFound
	}
	return s.add(parent, raw, now)
}

func (s *Store) add(parent ID, raw string, now time.Time) (ID, error) {
	x := Extract(raw, now)
	if x.Title == "" {
		return "", ErrEmptyTitle
	}
	if x.Priority == "" {
		x.Priority = Medium
	}
	id := NewID()
	info := Info{
		Title:    x.Title,
		Priority: x.Priority,
		Due:      x.Due,
		Tags:     x.Tags,
		Created:  now,
	}
	if err := s.put(id, parent, info); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) put(id, parent ID, info Info) error {
	if _, ok := s.nodes[id]; ok || id == root {
		return ErrIDExists
	}
	s.nodes[id] = info
	s.parent[id] = parent
	s.children[parent] = append(s.children[parent], id)
	s.children[id] = []ID{}
	return nil
}

// Toggle flips the completion of a single task. Subtasks are left alone:
// checking off a parent says nothing about its children.
func (s *Store) Toggle(id ID) error {
	info, ok := s.nodes[id]
	if !ok {
		return ErrNotFound
	}
	info.Done = !info.Done
	s.nodes[id] = info
	return nil
}

// CyclePriority rotates the task through high, medium and low.
func (s *Store) CyclePriority(id ID) error {
	info, ok := s.nodes[id]
	if !ok {
		return ErrNotFound
	}
	info.Priority = info.Priority.Cycle()
	s.nodes[id] = info
	return nil
}

// SetDue resolves phrase against now and sets the task's due date. An
// empty phrase clears it. An unrecognized phrase is ErrInvalidDate and
// leaves the task untouched.
func (s *Store) SetDue(id ID, phrase string, now time.Time) error {
	info, ok := s.nodes[id]
	if !ok {
		return ErrNotFound
	}
	if strings.TrimSpace(phrase) == "" {
		info.Due = nil
		s.nodes[id] = info
		return nil
	}
	at, ok := date.Resolve(phrase, now)
	if !ok {
		return ErrInvalidDate
	}
	info.Due = &at
	s.nodes[id] = info
	return nil
}

// Delete removes a task and its whole subtree.
func (s *Store) Delete(id ID) error {
	if _, ok := s.nodes[id]; !ok {
		return ErrNotFound
	}
	s.detach(id)
	s.remove(id)
	return nil
}

// ClearCompleted deletes every completed task anywhere in the tree, each
// taking its remaining subtree with it, and reports how many nodes went.
func (s *Store) ClearCompleted() int {
	removed := 0
	var sweep func(id ID)
	sweep = func(id ID) {
		// copy: detach edits the slice we would be ranging over
		for _, c := range append([]ID(nil), s.children[id]...) {
			if s.nodes[c].Done {
				before := len(s.nodes)
				s.detach(c)
				s.remove(c)
				removed += before - len(s.nodes)
				continue
			}
			sweep(c)
		}
	}
	sweep(root)
	return removed
}

func (s *Store) detach(child ID) {
	parent, ok := s.parent[child]
	if !ok {
		return
	}
	delete(s.parent, child)
	children := s.children[parent]
	for i, c := range children {
		if c == child {
			s.children[parent] = append(children[:i], children[i+1:]...)
			return
		}
	}
}

func (s *Store) remove(id ID) {
	for _, c := range s.children[id] {
		s.remove(c)
	}
	delete(s.nodes, id)
	delete(s.parent, id)
	delete(s.children, id)
}

// Get returns a copy of the task's fields.
func (s *Store) Get(id ID) (Info, bool) {
	info, ok := s.nodes[id]
	return info, ok
}

// Roots returns the top-level tasks in display order.
func (s *Store) Roots() []ID {
	return append([]ID(nil), s.children[root]...)
}

// Children returns id's direct subtasks in display order.
func (s *Store) Children(id ID) []ID {
	return append([]ID(nil), s.children[id]...)
}

// Parent returns id's parent, or false for top-level tasks.
func (s *Store) Parent(id ID) (ID, bool) {
	p, ok := s.parent[id]
	if !ok || p == root {
		return "", false
	}
	return p, true
}

// Depth is the number of ancestors above id; top-level tasks are 0.
func (s *Store) Depth(id ID) int {
	d := 0
	for p := s.parent[id]; p != "" && p != root; p = s.parent[p] {
		d++
	}
	return d
}

// Len is the number of tasks in the store, at every depth.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Tree flattens the arena back into a value tree in display order, the
// shape storage adapters exchange.
func (s *Store) Tree() []Task {
	return s.subtree(root)
}

func (s *Store) subtree(id ID) []Task {
	children := s.children[id]
	out := make([]Task, 0, len(children))
	for _, c := range children {
		out = append(out, Task{ID: c, Info: s.nodes[c], Children: s.subtree(c)})
	}
	return out
}

// NewStoreFromTree rebuilds an arena from a value tree, keeping order.
// Tasks with no ID get a fresh one; a duplicate ID is ErrIDExists.
func NewStoreFromTree(tasks []Task) (*Store, error) {
	s := NewStore()
	if err := s.graft(root, tasks); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) graft(parent ID, tasks []Task) error {
	for _, t := range tasks {
		id := t.ID
		if id == "" {
			id = NewID()
		}
		if err := s.put(id, parent, t.Info); err != nil {
			return err
		}
		if err := s.graft(id, t.Children); err != nil {
			return err
		}
	}
	return nil
}
