package task

import "strings"

// Filter selects tasks for display. The zero value keeps everything.
type Filter struct {
	// Query is matched case-insensitively against titles and tags.
	Query string
	// Tag keeps only tasks carrying this tag, matched case-insensitively.
	Tag string
	// Priority keeps only tasks at this level; empty means any.
	Priority Priority
	// Done keeps only tasks with this completion state; nil means any.
	Done *bool
	// Focus hides completed tasks at every depth.
	Focus bool
}

// Matches judges a single task against the filter.
func (f Filter) Matches(info Info) bool {
	if f.Focus && info.Done {
		return false
	}
	if f.Done != nil && info.Done != *f.Done {
		return false
	}
	if f.Priority != "" && info.Priority != f.Priority {
		return false
	}
	if f.Tag != "" && !hasTag(info.Tags, f.Tag) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(info.Title), q) && !tagsContain(info.Tags, q) {
			return false
		}
	}
	return true
}

// Visible walks the tree in display order and returns the tasks f keeps.
// Every task is judged on its own: a hidden parent does not hide its
// subtasks, and a matching subtask does not pull its parent in.
func (s *Store) Visible(f Filter) []ID {
	var out []ID
	var walk func(id ID)
	walk = func(id ID) {
		for _, c := range s.children[id] {
			if f.Matches(s.nodes[c]) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// hasTag reports exact tag membership, folding case: extraction stores
// tags lowered, but hand-edited data files can carry any case.
func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

// tagsContain reports whether any tag contains q, which arrives lowered.
func tagsContain(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
