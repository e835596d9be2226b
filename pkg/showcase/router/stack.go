package router

// StackEntry represents a single entry in the navigation stack.
// It stores the route, the input that was used to run the screen,
// and any resume state returned by the screen.
type StackEntry struct {
	Route  Route
	Input  any
	Resume any
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new screen.
func (s *Stack) Push(route Route, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Route:  route,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopTo unwinds the stack down to the most recent entry for route and
// returns it, removed. If route is not on the stack, the stack is cleared
// and nil is returned.
func (s *Stack) PopTo(route Route) *StackEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Route == route {
			entry := s.entries[i]
			s.entries = s.entries[:i]
			return &entry
		}
	}
	s.Clear()
	return nil
}

// Routes returns the routes on the stack, bottom first.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
