// Package linking resolves deep links to routes.
//
// The path table derived from the registry is loaded into a chi radix tree,
// one GET route per path, so matching follows the same rules an HTTP router
// would apply: Home is "/", every example is "/<name>".
package linking

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/go-chi/chi/v5"
)

var (
	ErrUnknownLink = errors.New("linking: no route for link")
	ErrBadLink     = errors.New("linking: malformed link")
)

// Resolver maps deep links to route names.
type Resolver struct {
	mux      *chi.Mux
	prefixes []string
	patterns map[string]catalog.Name
	paths    routes.PathTable
}

// New builds a resolver for paths. Prefixes such as "showcase://" are
// stripped from links before matching; longer prefixes are tried first.
func New(paths routes.PathTable, prefixes ...string) (*Resolver, error) {
	r := &Resolver{
		mux:      chi.NewMux(),
		patterns: make(map[string]catalog.Name, len(paths)),
		paths:    paths,
	}

	for _, p := range prefixes {
		if p != "" {
			r.prefixes = append(r.prefixes, p)
		}
	}
	sort.Slice(r.prefixes, func(i, j int) bool { return len(r.prefixes[i]) > len(r.prefixes[j]) })

	for name, segment := range paths {
		pattern := "/" + segment
		if other, taken := r.patterns[pattern]; taken {
			return nil, fmt.Errorf("linking: %q and %q share path %q", other, name, pattern)
		}
		r.patterns[pattern] = name
		r.mux.Get(pattern, http.NotFound)
	}

	return r, nil
}

// Resolve returns the route a link opens. The empty link and "/" open Home.
// Query strings, fragments and a trailing slash are ignored.
func (r *Resolver) Resolve(link string) (catalog.Name, error) {
	path, err := r.path(link)
	if err != nil {
		return "", err
	}

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLink, link)
	}

	name, ok := r.patterns[rctx.RoutePattern()]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLink, link)
	}
	return name, nil
}

func (r *Resolver) path(link string) (string, error) {
	link = strings.TrimSpace(link)
	for _, p := range r.prefixes {
		if strings.HasPrefix(link, p) {
			link = strings.TrimPrefix(link, p)
			break
		}
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadLink, err)
	}
	if u.Scheme != "" || u.Host != "" {
		return "", fmt.Errorf("%w: unexpected scheme or host in %q", ErrBadLink, link)
	}

	path := "/" + strings.Trim(u.Path, "/")
	return path, nil
}

// Link returns the deep link path for name.
func (r *Resolver) Link(name catalog.Name) (string, bool) {
	segment, ok := r.paths[name]
	if !ok {
		return "", false
	}
	return "/" + segment, true
}
