package routes

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
)

// Table bundles the derived routing data.
type Table struct {
	Params  ParamSchema
	Paths   PathTable
	Screens []ScreenEntry

	byName map[catalog.Name]int
}

// Build derives the complete table from reg.
func Build(reg *catalog.Registry, opts Options) *Table {
	t := &Table{
		Params:  BuildParamSchema(reg),
		Paths:   BuildPathTable(reg),
		Screens: BuildScreenStack(reg, opts),
	}

	t.byName = make(map[catalog.Name]int, len(t.Screens))
	for i, e := range t.Screens {
		t.byName[e.Name] = i
	}

	return t
}

// Entry returns the screen entry for name.
func (t *Table) Entry(name catalog.Name) (ScreenEntry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return ScreenEntry{}, false
	}
	return t.Screens[i], true
}

// Names returns every route name, Home first.
func (t *Table) Names() []catalog.Name {
	names := make([]catalog.Name, len(t.Screens))
	for i, e := range t.Screens {
		names[i] = e.Name
	}
	return names
}

// Examples returns the non-Home entries in display order.
func (t *Table) Examples() []ScreenEntry {
	return t.Screens[1:]
}
