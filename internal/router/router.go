package router

import (
	"fmt"
	"strings"

	"was/internal/controller"
	"was/internal/http/request"
)

var ErrOverlappingRoutes = fmt.Errorf("overlapping route prefixes")

type Route struct {
	Prefix  string
	Handler controller.Handler
}

// Router is immutable once built, so concurrent Select calls need no locking.
type Router struct {
	routes   []Route
	static   controller.Handler
	notFound controller.Handler
}

// New rejects any table in which one prefix is a prefix of another, so at most
// one route can ever match a path.
func New(static, notFound controller.Handler, routes ...Route) (*Router, error) {
	if static == nil || notFound == nil {
		return nil, fmt.Errorf("static and not-found handlers are required")
	}

	for i, r := range routes {
		if r.Prefix == "" || !strings.HasPrefix(r.Prefix, "/") {
			return nil, fmt.Errorf("invalid route prefix %q", r.Prefix)
		}
		if r.Handler == nil {
			return nil, fmt.Errorf("route %q has no handler", r.Prefix)
		}
		for _, other := range routes[:i] {
			if strings.HasPrefix(r.Prefix, other.Prefix) || strings.HasPrefix(other.Prefix, r.Prefix) {
				return nil, fmt.Errorf("%w: %q and %q", ErrOverlappingRoutes, other.Prefix, r.Prefix)
			}
		}
	}

	table := make([]Route, len(routes))
	copy(table, routes)

	return &Router{
		routes:   table,
		static:   static,
		notFound: notFound,
	}, nil
}

func (r *Router) Select(req request.Request) controller.Handler {
	if req.HasExtension() {
		return r.static
	}

	path := req.Path()
	for _, route := range r.routes {
		if strings.HasPrefix(path, route.Prefix) {
			return route.Handler
		}
	}
	return r.notFound
}

func (r *Router) Prefixes() []string {
	prefixes := make([]string, 0, len(r.routes))
	for _, route := range r.routes {
		prefixes = append(prefixes, route.Prefix)
	}
	return prefixes
}
