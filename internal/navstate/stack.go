package navstate

// Entry is one screen instance on a stack.
type Entry struct {
	Route  string
	Params map[string]string
}

func (e Entry) same(other Entry) bool {
	if e.Route != other.Route || len(e.Params) != len(other.Params) {
		return false
	}
	for k, v := range e.Params {
		if other.Params[k] != v {
			return false
		}
	}
	return true
}

// Stack is the history of one tab.
type Stack struct {
	entries []Entry
}

// NewStack creates a stack whose bottom entry is root.
func NewStack(root Entry) *Stack {
	return &Stack{entries: []Entry{root}}
}

// Push adds an entry unless it is already on top.
func (s *Stack) Push(e Entry) {
	if top := s.Peek(); top != nil && top.same(e) {
		return
	}
	s.entries = append(s.entries, e)
}

// Pop removes the top entry. The root entry is never removed.
func (s *Stack) Pop() *Entry {
	if len(s.entries) <= 1 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// PopToRoot drops everything above the root entry.
func (s *Stack) PopToRoot() {
	if len(s.entries) > 1 {
		s.entries = s.entries[:1]
	}
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}
