package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/showcase/pkg/showcase/router"
)

// Routes - typed constants for compile-time safety
const (
	RouteHome   router.Route = "Home"
	RouteFade   router.Route = "Fade"
	RouteSpring router.Route = "Spring"
)

// Input types - what each screen needs to render
type HomeInput struct {
	Examples []router.Route
	Resume   *HomeResume
}

// Result types - what each screen returns
type HomeResult struct {
	Selected router.Route
	Exit     bool
	Resume   *HomeResume
}

type ExampleResult struct {
	BackToHome bool
}

// Resume types - position state for back navigation
type HomeResume struct {
	FocusedIndex int
}

// Example demonstrates basic router usage with screen registration and transitions.
func Example() {
	r := router.New()

	homeCalls := 0
	examples := []router.Route{RouteFade, RouteSpring}

	r.Register(RouteHome, func(input any) (any, error) {
		in := input.(HomeInput)
		homeCalls++

		if homeCalls == 1 {
			fmt.Println("Home: selecting", in.Examples[1])
			return HomeResult{
				Selected: in.Examples[1],
				Resume:   &HomeResume{FocusedIndex: 1},
			}, nil
		}
		fmt.Printf("Home: focus restored to %d, exiting\n", in.Resume.FocusedIndex)
		return HomeResult{Exit: true}, nil
	})

	r.Register(RouteSpring, func(input any) (any, error) {
		fmt.Println("Spring: going back")
		return ExampleResult{}, nil
	})

	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
		switch from {
		case RouteHome:
			res := result.(HomeResult)
			if res.Exit {
				return router.RouteExit, nil
			}
			stack.Push(from, HomeInput{Examples: examples}, res.Resume)
			return res.Selected, nil

		default:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(HomeInput)
				if entry.Resume != nil {
					in.Resume = entry.Resume.(*HomeResume)
				}
				return entry.Route, in
			}
		}
		return router.RouteExit, nil
	})

	_ = r.Run(RouteHome, HomeInput{Examples: examples})

	// Output:
	// Home: selecting Spring
	// Spring: going back
	// Home: focus restored to 1, exiting
}

// Example_backToHome demonstrates unwinding straight to Home from a deeper stack.
func Example_backToHome() {
	stack := router.NewStack()
	stack.Push(RouteHome, HomeInput{}, &HomeResume{FocusedIndex: 3})
	stack.Push(RouteFade, nil, nil)

	entry := stack.PopTo(RouteHome)
	fmt.Println(entry.Route, entry.Resume.(*HomeResume).FocusedIndex, stack.Len())

	// Output:
	// Home 3 0
}
