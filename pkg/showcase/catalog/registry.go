package catalog

import "github.com/BrandonKowalski/showcase/pkg/showcase/canvas"

// Name identifies an example. It doubles as the route name and, verbatim, as
// the deep-link path segment.
type Name string

// HomeName is the route name of the list screen. No example may use it.
const HomeName Name = "Home"

// ScreenFunc draws one frame of an example screen. Examples accept no
// navigation parameters; everything they need comes from the canvas.
type ScreenFunc func(c canvas.Canvas)

// Descriptor describes one example screen.
type Descriptor struct {
	Name   Name
	Title  string
	Icon   string // optional, shown before the title
	Screen ScreenFunc
}

// Registry is an ordered, immutable mapping of example name to descriptor.
type Registry struct {
	names       []Name
	descriptors map[Name]Descriptor
}

// New builds a registry from descriptors in display order.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		names:       make([]Name, 0, len(descriptors)),
		descriptors: make(map[Name]Descriptor, len(descriptors)),
	}

	for i, d := range descriptors {
		if err := validate(d); err != nil {
			return nil, &ConfigError{Name: d.Name, Index: i, Err: err}
		}
		if _, exists := r.descriptors[d.Name]; exists {
			return nil, &ConfigError{Name: d.Name, Index: i, Err: ErrDuplicateName}
		}
		r.descriptors[d.Name] = d
		r.names = append(r.names, d.Name)
	}

	return r, nil
}

// MustNew is like New but panics on a configuration defect.
// Use it for registries declared in code, where a defect is a programming error.
func MustNew(descriptors ...Descriptor) *Registry {
	r, err := New(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

func validate(d Descriptor) error {
	if d.Name == HomeName {
		return ErrReservedName
	}
	if !ValidName(d.Name) {
		return ErrInvalidName
	}
	if d.Title == "" {
		return ErrMissingTitle
	}
	if d.Screen == nil {
		return ErrMissingScreen
	}
	return nil
}

// ValidName reports whether name can be used verbatim as a single path
// segment: unreserved URL characters only, and not "." or "..".
func ValidName(name Name) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == '~':
		default:
			return false
		}
	}
	return true
}

// Names returns the example names in display order.
func (r *Registry) Names() []Name {
	names := make([]Name, len(r.names))
	copy(names, r.names)
	return names
}

// Descriptors returns the descriptors in display order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.descriptors[name])
	}
	return out
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name Name) (Descriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}

// Len returns the number of examples.
func (r *Registry) Len() int {
	return len(r.names)
}
