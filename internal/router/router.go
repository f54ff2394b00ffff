// Package router maps the game's page names to paths.
package router

// Name identifies a page.
type Name string

const (
	Main       Name = "Main"
	GameCenter Name = "GameCenter"
	Settings   Name = "Settings"
)

// Route is a navigable page.
type Route struct {
	Name  Name
	Path  string
	Title string
}

var routes = []Route{
	{Name: Main, Path: "/", Title: "Menu"},
	{Name: GameCenter, Path: "/game", Title: "Game"},
	{Name: Settings, Path: "/settings", Title: "Settings"},
}

// Routes returns all routes in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve finds the route whose path matches exactly.
func Resolve(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Lookup finds a route by name.
func Lookup(name Name) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// History tracks navigation between pages, starting at Main.
type History struct {
	stack []Route
}

// NewHistory returns a history positioned at the Main page.
func NewHistory() *History {
	home, _ := Lookup(Main)
	return &History{stack: []Route{home}}
}

// Current returns the active route.
func (h *History) Current() Route {
	return h.stack[len(h.stack)-1]
}

// Push navigates to path. Unknown paths leave the history unchanged.
func (h *History) Push(path string) (Route, bool) {
	r, ok := Resolve(path)
	if !ok {
		return h.Current(), false
	}
	if r.Name == h.Current().Name {
		return r, true
	}
	h.stack = append(h.stack, r)
	return r, true
}

// Back returns to the previous page; the first page is never popped.
func (h *History) Back() Route {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	return h.Current()
}
