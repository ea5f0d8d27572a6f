package console

import (
	"fmt"
	"strings"
)

type RouteName string

const (
	RouteLogin      RouteName = "login"
	RouteDashboard  RouteName = "dashboard"
	RouteForms      RouteName = "forms"
	RouteFormDetail RouteName = "form-detail"
	RouteCreateForm RouteName = "create-form"
	// RouteLoading is shown while the gate is pending. It has no path.
	RouteLoading RouteName = "loading"
)

const (
	PathLogin      = "/login"
	PathRoot       = "/"
	PathDashboard  = "/dashboard"
	PathForms      = "/forms"
	PathCreateForm = "/create-form"
)

// Route is a parsed navigation target.
type Route struct {
	Name   RouteName
	Path   string
	FormID string
}

// Protected reports whether the route sits behind the session gate.
func (r Route) Protected() bool {
	return r.Name != RouteLogin
}

func FormPath(formID string) string {
	return PathForms + "/" + formID
}

// ParseRoute maps a path onto the console's route surface. "/" renders the
// dashboard.
func ParseRoute(path string) (Route, error) {
	clean := "/" + strings.Trim(path, "/")

	switch clean {
	case PathLogin:
		return Route{Name: RouteLogin, Path: clean}, nil
	case PathRoot, PathDashboard:
		return Route{Name: RouteDashboard, Path: clean}, nil
	case PathForms:
		return Route{Name: RouteForms, Path: clean}, nil
	case PathCreateForm:
		return Route{Name: RouteCreateForm, Path: clean}, nil
	}

	if id, ok := strings.CutPrefix(clean, PathForms+"/"); ok && id != "" && !strings.Contains(id, "/") {
		return Route{Name: RouteFormDetail, Path: clean, FormID: id}, nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// Router applies the session gate to navigation requests.
type Router struct {
	requested Route
}

func NewRouter(initial string) (*Router, error) {
	r, err := ParseRoute(initial)
	if err != nil {
		return nil, err
	}
	return &Router{requested: r}, nil
}

// Navigate records path as the route the user asked for.
func (r *Router) Navigate(path string) error {
	route, err := ParseRoute(path)
	if err != nil {
		return err
	}
	r.requested = route
	return nil
}

func (r *Router) Requested() Route {
	return r.requested
}

// Resolve returns the route to render for the gate's state. Protected routes
// show the loading route while pending and redirect to /login without a
// session. A signed-in user asking for /login lands on the dashboard.
func (r *Router) Resolve(state GateState) Route {
	req := r.requested

	switch state {
	case GatePending:
		if req.Protected() {
			return Route{Name: RouteLoading}
		}
	case GateAnonymous:
		if req.Protected() {
			return Route{Name: RouteLogin, Path: PathLogin}
		}
	case GateAuthenticated:
		if !req.Protected() {
			return Route{Name: RouteDashboard, Path: PathRoot}
		}
	}
	return req
}
