package router

import (
	"errors"
	"fmt"
	"log/slog"
)

// Route names a screen. Applications declare their routes as typed constants
// (or derive them from a registry) and register one ScreenFunc per route.
type Route string

// RouteExit is returned by a TransitionFunc to stop the router.
// Registered routes are never empty, so it cannot collide with one.
const RouteExit Route = ""

var (
	ErrNoTransition  = errors.New("router: no transition function set")
	ErrNotRegistered = errors.New("router: route not registered")
)

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the route that just completed, its result, and the navigation stack.
// It returns the next route to navigate to and its input.
//
// Return (route, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (RouteExit, nil) to exit the router.
type TransitionFunc func(from Route, result any, stack *Stack) (next Route, input any)

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Route]ScreenFunc
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Route]ScreenFunc),
		stack:   NewStack(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger navigation is reported to.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this route.
func (r *Router) Register(route Route, fn ScreenFunc) *Router {
	r.screens[route] = fn
	return r
}

// Registered reports whether route has a screen.
func (r *Router) Registered(route Route) bool {
	_, ok := r.screens[route]
	return ok
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given route with the given input.
// It continues running until the transition function returns RouteExit
// or an error occurs.
func (r *Router) Run(start Route, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotRegistered, current)
		}

		r.logger.Debug("Entering screen", "route", current, "depth", r.stack.Len())

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %q error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		if next == RouteExit {
			r.logger.Debug("Router exiting", "from", current)
			return nil
		}

		r.logger.Info("Navigating", "from", current, "to", next)

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
