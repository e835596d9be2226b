// Package examples holds the animation examples shown in the catalog.
package examples

import (
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
)

// Registry returns the catalog in display order.
func Registry() *catalog.Registry {
	return catalog.MustNew(
		catalog.Descriptor{Name: "Fade", Title: "Fade in and out", Icon: "👻", Screen: FadeScreen},
		catalog.Descriptor{Name: "Slide", Title: "Slide", Icon: "➡️", Screen: SlideScreen},
		catalog.Descriptor{Name: "Spring", Title: "Spring", Icon: "🏀", Screen: SpringScreen},
		catalog.Descriptor{Name: "Colors", Title: "Color interpolation", Icon: "🎨", Screen: ColorScreen},
		catalog.Descriptor{Name: "Pulse", Title: "Pulse", Icon: "💓", Screen: PulseScreen},
		catalog.Descriptor{Name: "Stagger", Title: "Staggered bars", Icon: "📊", Screen: StaggerScreen},
	)
}
