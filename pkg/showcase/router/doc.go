// Package router provides screen navigation with explicit data flow.
//
// Each screen is a function from an input to a result, and a single
// transition function decides where every result leads. Back navigation
// is an explicit stack the transition function pushes and pops.
//
// # Basic Usage
//
//	const (
//	    RouteHome  router.Route = "Home"
//	    RouteFade  router.Route = "Fade"
//	)
//
//	r := router.New()
//
//	r.Register(RouteHome, func(input any) (any, error) {
//	    return homeScreen(input.(HomeInput)), nil
//	})
//
//	r.Register(RouteFade, func(input any) (any, error) {
//	    return fadeScreen(), nil
//	})
//
//	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
//	    switch from {
//	    case RouteHome:
//	        res := result.(HomeResult)
//	        if res.Exit {
//	            return router.RouteExit, nil
//	        }
//	        stack.Push(from, HomeInput{}, res.Resume)
//	        return res.Selected, nil
//	    default:
//	        // Back to wherever we came from.
//	        if entry := stack.Pop(); entry != nil {
//	            in := entry.Input.(HomeInput)
//	            in.Resume = entry.Resume
//	            return entry.Route, in
//	        }
//	        return RouteHome, HomeInput{}
//	    }
//	})
//
//	r.Run(RouteHome, HomeInput{})
//
// # Resume State
//
// Screens can return resume state (like the focused row) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
//
// The Resume field should be nil for stateless screens.
package router
