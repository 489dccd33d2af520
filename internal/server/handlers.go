package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/waypoint/internal/chrome"
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	"github.com/alexisbeaulieu97/waypoint/internal/screens"
	"github.com/alexisbeaulieu97/waypoint/internal/topology"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

type routeView struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Tab       string   `json:"tab,omitempty"`
	Container string   `json:"container,omitempty"`
	Pattern   string   `json:"pattern"`
	Params    []string `json:"params,omitempty"`
}

type linkView struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type matchView struct {
	URL      string            `json:"url"`
	Path     string            `json:"path"`
	Route    string            `json:"route,omitempty"`
	Kind     string            `json:"kind,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
	NotFound bool              `json:"notFound"`
}

type layoutView struct {
	Mode                    layout.Mode     `json:"mode"`
	Collapsed               bool            `json:"collapsed"`
	Geometry                layout.Geometry `json:"geometry"`
	Margin                  string          `json:"margin"`
	Presentation            string          `json:"presentation"`
	GestureResponseDistance float64         `json:"gestureResponseDistance"`
	Chrome                  chrome.Bar      `json:"chrome"`
}

type errorView struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLinking(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.nav.Linking)
}

func (s *Server) handleRoutes(w http.ResponseWriter, _ *http.Request) {
	all := s.nav.Registry.Routes()
	views := make([]routeView, 0, len(all))
	for _, route := range all {
		views = append(views, routeView{
			Name:      route.Name,
			Kind:      string(route.Kind),
			Tab:       route.Tab,
			Container: route.Container,
			Pattern:   route.Pattern.String(),
			Params:    route.Pattern.Params(),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	params := routes.Params{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[len(values)-1]
		}
	}

	path, err := s.nav.Resolver.Resolve(name, params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, linkView{Name: name, Path: path})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorView{Error: "url query parameter is required"})
		return
	}

	path, ok := s.nav.Linking.Path(raw)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorView{Error: "url is not a link into this app"})
		return
	}

	match := s.nav.Registry.Match(path)
	view := matchView{URL: raw, Path: match.Path, NotFound: match.NotFound}
	if !match.NotFound {
		view.Route = match.Route.Name
		view.Kind = string(match.Route.Kind)
		view.Params = match.Params
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := strconv.ParseFloat(query.Get("width"), 64)
	if err != nil || width < 0 {
		writeJSON(w, http.StatusBadRequest, errorView{Error: "width must be a non-negative number"})
		return
	}
	var height float64
	if raw := query.Get("height"); raw != "" {
		if height, err = strconv.ParseFloat(raw, 64); err != nil {
			writeJSON(w, http.StatusBadRequest, errorView{Error: "height must be a number"})
			return
		}
	}
	platform, err := layout.ParsePlatform(query.Get("platform"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorView{Error: err.Error()})
		return
	}

	env, err := s.nav.Environment(layout.Viewport{Width: width, Height: height, Platform: platform})
	if err != nil {
		s.writeError(w, err)
		return
	}

	mode := layout.SelectFor(env.Viewport, env.Breakpoints)
	collapsed := layout.DefaultCollapsed(width, env.Breakpoints.SidebarCollapsed)
	if raw := query.Get("collapsed"); raw != "" {
		if collapsed, err = strconv.ParseBool(raw); err != nil {
			writeJSON(w, http.StatusBadRequest, errorView{Error: "collapsed must be a boolean"})
			return
		}
	}

	geometry := layout.Margins(mode, collapsed, env.Metrics)
	items := chrome.Items(s.nav.TabsFor(mode), "", platform, s.nav.ResolverFor(mode))
	writeJSON(w, http.StatusOK, layoutView{
		Mode:                    mode,
		Collapsed:               collapsed,
		Geometry:                geometry,
		Margin:                  geometry.CSS(),
		Presentation:            layout.Presentation(mode),
		GestureResponseDistance: layout.GestureResponseDistance(mode, collapsed, env.Metrics),
		Chrome:                  chrome.Build(mode, collapsed, items),
	})
}

func (s *Server) handleRender(route routes.Route) http.HandlerFunc {
	screen, _ := s.nav.Topology.Screen(route.Name)
	names := route.Pattern.Params()

	return func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(names))
		for _, name := range names {
			value := chi.URLParam(r, name)
			if unescaped, err := url.PathUnescape(value); err == nil {
				value = unescaped
			}
			params[name] = value
		}
		writeText(w, http.StatusOK, screens.Render(screen, params))
	}
}

func (s *Server) handleRenderNotFound(w http.ResponseWriter, r *http.Request) {
	screen := topology.Screen{Name: topology.NotFoundRoute, Component: s.nav.Topology.NotFound}
	writeText(w, http.StatusNotFound, screens.Render(screen, map[string]string{"path": r.URL.Path}))
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		unknownRoute *waypointerrors.UnknownRouteError
		unknownParam *waypointerrors.UnknownParamError
		missingParam *waypointerrors.MissingParamError
		validation   *waypointerrors.ValidationError
	)
	switch {
	case errors.As(err, &unknownRoute):
		status = http.StatusNotFound
	case errors.As(err, &unknownParam), errors.As(err, &missingParam), errors.As(err, &validation):
		status = http.StatusBadRequest
	default:
		s.log.Error(err, "request failed")
	}

	writeJSON(w, status, errorView{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body + "\n"))
}
