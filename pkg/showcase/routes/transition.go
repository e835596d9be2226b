package routes

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/router"
)

// HomeAction is how the Home screen was left.
type HomeAction int

const (
	HomeSelected HomeAction = iota // a row was activated
	HomeExit                       // back pressed on Home
)

// HomeInput is what the Home screen renders.
type HomeInput struct {
	Resume *HomeResume // nil on first entry

	// Animation is the transition of the screen being left when Home is
	// reached by going back. Empty on first entry.
	Animation Animation
}

// HomeResume restores the Home list when navigating back to it.
type HomeResume struct {
	FocusedIndex      int
	VisibleStartIndex int
}

// HomeResult is returned by the Home screen.
type HomeResult struct {
	Action   HomeAction
	Selected catalog.Name
	Resume   *HomeResume
}

// ExampleResult is returned by an example screen. Back is the control the
// user left through.
type ExampleResult struct {
	Back BackControl
}

// Transition returns the single transition function for the table.
//
// Home → example pushes Home on the stack. Leaving an example through the
// custom back control always lands on Home, however deep the stack is; the
// default control pops one level. An example entered from a deep link has
// nothing below it and falls back to Home.
func (t *Table) Transition() router.TransitionFunc {
	home := router.Route(Home)

	return func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
		if from == home {
			res, ok := result.(HomeResult)
			if !ok || res.Action == HomeExit {
				return router.RouteExit, nil
			}
			if _, known := t.Entry(res.Selected); !known || res.Selected == Home {
				return router.RouteExit, nil
			}
			stack.Push(from, HomeInput{}, res.Resume)
			return router.Route(res.Selected), nil
		}

		leaving, known := t.Entry(catalog.Name(from))
		if !known {
			return router.RouteExit, nil
		}

		res, ok := result.(ExampleResult)
		if !ok {
			return router.RouteExit, nil
		}

		// Started from a deep link: nothing below to go back to.
		if stack.IsEmpty() {
			return home, HomeInput{Animation: leaving.Options.Animation}
		}

		var entry *router.StackEntry
		if res.Back == BackToHome {
			entry = stack.PopTo(home)
		} else {
			entry = stack.Pop()
		}

		if entry == nil {
			return home, HomeInput{Animation: leaving.Options.Animation}
		}
		return entry.Route, restoreInput(entry, leaving.Options.Animation)
	}
}

// restoreInput rebuilds the input of the screen going back to. A pop plays
// the animation of the screen being removed.
func restoreInput(entry *router.StackEntry, anim Animation) any {
	in, ok := entry.Input.(HomeInput)
	if !ok {
		return entry.Input
	}
	if resume, ok := entry.Resume.(*HomeResume); ok {
		in.Resume = resume
	}
	in.Animation = anim
	return in
}
