// Package routes derives everything the navigation runtime needs from the
// example registry: the parameter schema, the deep-link path table and the
// ordered screen entries with their display options.
//
// Everything here is computed once, synchronously, before the first screen
// runs. Nothing is updated afterwards.
package routes

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/platform"
	"github.com/BrandonKowalski/showcase/pkg/showcase/router"
)

// Home is the route of the list screen.
const Home = catalog.HomeName

// Default Home titles. The renderer may localize them.
const (
	HomeTitle       = "Reanimated examples"
	HomeHeaderTitle = "🐎 Reanimated examples"
)

// Animation selects the transition used when a screen is entered.
type Animation string

const (
	AnimationDefault Animation = "default"
	AnimationFade    Animation = "fade"
)

// BackControl is what the header shows on the left.
type BackControl int

const (
	// BackDefault is the framework's control: pop one level.
	BackDefault BackControl = iota
	// BackHidden shows no back control.
	BackHidden
	// BackToHome is a custom control that always navigates to Home.
	BackToHome
)

func (b BackControl) String() string {
	switch b {
	case BackDefault:
		return "default"
	case BackHidden:
		return "hidden"
	case BackToHome:
		return "home"
	default:
		return "unknown"
	}
}

// NoParams is the parameter shape of every route: none accepted.
type NoParams struct{}

// ParamSchema maps each route to its parameter shape.
type ParamSchema map[catalog.Name]NoParams

// PathTable maps each route to its deep-link path segment.
type PathTable map[catalog.Name]string

// ScreenOptions are the display options of one screen.
type ScreenOptions struct {
	HeaderTitle string
	Title       string
	Icon        string
	Animation   Animation
	HeaderLeft  BackControl
}

// ScreenEntry is one navigable destination. Screen is nil for Home, whose
// body is the example list rendered by the host.
type ScreenEntry struct {
	Name    catalog.Name
	Screen  catalog.ScreenFunc
	Options ScreenOptions
}

// Route returns the entry's router identifier.
func (e ScreenEntry) Route() router.Route {
	return router.Route(e.Name)
}

// Options configures how screen entries are derived.
type Options struct {
	ReduceMotion bool
	Platform     platform.Info
}

// BuildParamSchema returns one NoParams entry per example plus Home.
func BuildParamSchema(reg *catalog.Registry) ParamSchema {
	schema := ParamSchema{Home: {}}
	for _, name := range reg.Names() {
		schema[name] = NoParams{}
	}
	return schema
}

// BuildPathTable maps Home to "" and every example to its own name.
func BuildPathTable(reg *catalog.Registry) PathTable {
	paths := PathTable{Home: ""}
	for _, name := range reg.Names() {
		paths[name] = string(name)
	}
	return paths
}

// BuildScreenStack returns Home followed by one entry per example, in
// registry order.
func BuildScreenStack(reg *catalog.Registry, opts Options) []ScreenEntry {
	suppressBack := opts.Platform.Capabilities().SuppressDefaultBack

	home := ScreenEntry{
		Name: Home,
		Options: ScreenOptions{
			HeaderTitle: HomeHeaderTitle,
			Title:       HomeTitle,
			Animation:   AnimationDefault,
			HeaderLeft:  BackDefault,
		},
	}
	if suppressBack {
		home.Options.HeaderLeft = BackHidden
	}

	animation := AnimationDefault
	if opts.ReduceMotion {
		animation = AnimationFade
	}

	back := BackDefault
	if suppressBack {
		back = BackToHome
	}

	entries := make([]ScreenEntry, 0, reg.Len()+1)
	entries = append(entries, home)

	for _, d := range reg.Descriptors() {
		entries = append(entries, ScreenEntry{
			Name:   d.Name,
			Screen: d.Screen,
			Options: ScreenOptions{
				HeaderTitle: d.Title,
				Title:       d.Title,
				Icon:        d.Icon,
				Animation:   animation,
				HeaderLeft:  back,
			},
		})
	}

	return entries
}
