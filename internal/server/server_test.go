package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	nav, err := navigator.NewService(nil, nil).Load(filepath.Join("..", "..", "examples", "navigator.yaml"))
	require.NoError(t, err)
	return New(nav, nil).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLinks(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)

	cases := []struct {
		name   string
		target string
		status int
		path   string
	}{
		{name: "static route", target: "/links/Dashboard", status: http.StatusOK, path: "/"},
		{name: "params", target: "/links/DeviceLog?deviceId=4&entryId=9", status: http.StatusOK, path: "/devices/4/log/9"},
		{name: "container suffix", target: "/links/DevicesStack", status: http.StatusOK, path: "/devices"},
		{name: "unknown route", target: "/links/Ghost", status: http.StatusNotFound},
		{name: "unknown param", target: "/links/Dashboard?foo=1", status: http.StatusBadRequest},
		{name: "missing param", target: "/links/Device", status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := get(t, h, tc.target)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.status == http.StatusOK {
				require.Equal(t, tc.path, decode[linkView](t, rec).Path)
			} else {
				require.NotEmpty(t, decode[errorView](t, rec).Error)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t), "/routes")
	require.Equal(t, http.StatusOK, rec.Code)

	views := decode[[]routeView](t, rec)
	require.Len(t, views, 12)
	require.Equal(t, "Dashboard", views[0].Name)

	var device routeView
	for _, v := range views {
		if v.Name == "Device" {
			device = v
		}
	}
	require.Equal(t, "stack", device.Kind)
	require.Equal(t, "DevicesStack", device.Container)
	require.Equal(t, []string{"deviceId"}, device.Params)
}

func TestLinking(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestServer(t), "/linking")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `"fleet://"`)
	require.Less(t, strings.Index(body, `"Main"`), strings.Index(body, `"Settings"`))
	require.Contains(t, body, `"NotFound":{"path":"*"}`)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)

	rec := get(t, h, "/match?url="+url.QueryEscape("https://fleet.example.com/update/5/course/6?ref=mail"))
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[matchView](t, rec)
	require.Equal(t, "Course", view.Route)
	require.Equal(t, string(routes.KindStack), view.Kind)
	require.Equal(t, map[string]string{"updateId": "5", "courseId": "6"}, view.Params)

	rec = get(t, h, "/match?url=/missing")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[matchView](t, rec).NotFound)

	rec = get(t, h, "/match?url="+url.QueryEscape("https://other.example.org/devices"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/match")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLayout(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)

	rec := get(t, h, "/layout?width=390&platform=ios")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[layoutView](t, rec)
	require.Equal(t, "bottom-tabs", string(view.Mode))
	require.Equal(t, "0px 0px 80px 0px", view.Margin)
	require.Equal(t, "modal", view.Presentation)
	require.Len(t, view.Chrome.Items, 5)

	rec = get(t, h, "/layout?width=1440")
	view = decode[layoutView](t, rec)
	require.Equal(t, "sidebar", string(view.Mode))
	require.False(t, view.Collapsed)
	require.Equal(t, 240.0, view.Geometry.Left)
	require.Equal(t, 290.0, view.GestureResponseDistance)
	require.Len(t, view.Chrome.Items, 7)

	rec = get(t, h, "/layout?width=1440&collapsed=true")
	require.Equal(t, 80.0, decode[layoutView](t, rec).Geometry.Left)

	for _, target := range []string{"/layout", "/layout?width=abc", "/layout?width=10&platform=tv", "/layout?width=10&collapsed=maybe"} {
		require.Equal(t, http.StatusBadRequest, get(t, h, target).Code, target)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	h := newTestServer(t)

	rec := get(t, h, "/render/devices/12/log/3")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "DeviceLog (deviceId=12, entryId=3)\n", rec.Body.String())

	rec = get(t, h, "/render/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Dashboard\n", rec.Body.String())

	rec = get(t, h, "/render/nowhere")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "404\n", rec.Body.String())
}

func TestChiPattern(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", chiPattern(routes.Pattern("/")))
	require.Equal(t, "/update/{updateId}/course/{courseId}", chiPattern(routes.Pattern("/update/:updateId/course/:courseId")))
}
