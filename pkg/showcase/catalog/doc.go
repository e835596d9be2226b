// Package catalog holds the static registry of example screens.
//
// A registry is an ordered, immutable table of example name to descriptor.
// The order is the order examples are listed on the Home screen; nothing
// else depends on it.
//
//	reg := catalog.MustNew(
//	    catalog.Descriptor{Name: "Fade", Title: "Fade in and out", Icon: "👻", Screen: fadeScreen},
//	    catalog.Descriptor{Name: "Spring", Title: "Spring bounce", Screen: springScreen},
//	)
//
//	for _, name := range reg.Names() {
//	    d, _ := reg.Lookup(name)
//	    fmt.Println(d.Title)
//	}
//
// Construction fails fast on configuration defects (duplicate names, a name
// that collides with the Home route, names that cannot be used verbatim as a
// deep-link path segment, missing titles or screens). A registry that
// constructed successfully is always well-formed.
package catalog
