package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/aretw0/netgrid/pkg/adapters/http"
	"github.com/aretw0/netgrid/pkg/domain"
	"github.com/aretw0/netgrid/pkg/grid"
	"github.com/aretw0/netgrid/pkg/network"
)

func newTestServer(t *testing.T) (*httptest.Server, *grid.System) {
	t.Helper()
	sys := grid.NewSystem()
	srv := httptest.NewServer(httpapi.NewHandler(sys))
	t.Cleanup(srv.Close)
	return srv, sys
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestListDevices(t *testing.T) {
	srv, sys := newTestServer(t)

	var devices []httpapi.DeviceResponse
	resp := getJSON(t, srv.URL+"/devices", &devices)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, devices, 3)
	assert.Equal(t, uint16(sys.Mainframe), devices[0].Address)
	assert.Equal(t, "main", devices[0].ID)
	assert.Equal(t, "mainframe", devices[0].Kind)
}

func TestGetDevice(t *testing.T) {
	srv, _ := newTestServer(t)

	var dev httpapi.DeviceResponse
	resp := getJSON(t, srv.URL+"/devices/2", &dev)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "term1", dev.ID)
	assert.Equal(t, "terminal", dev.Kind)

	resp = getJSON(t, srv.URL+"/devices/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/devices/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetDevicePath(t *testing.T) {
	srv, _ := newTestServer(t)

	var path httpapi.PathResponse
	resp := getJSON(t, srv.URL+"/devices/2/path", &path)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "main/net3/term1", path.Path)
	assert.Equal(t, []string{"main", "net3", "term1"}, path.Segments)

	resp = getJSON(t, srv.URL+"/devices/999/path", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// brokenInspector simulates a grid whose topology index has a dangling edge.
type brokenInspector struct{}

func (brokenInspector) Devices() []domain.Device { return nil }

func (brokenInspector) DeviceAt(addr network.Address) (domain.Device, bool) {
	return domain.Device{Kind: domain.KindTerminal, ID: "t1", Addr: addr}, true
}

func (brokenInspector) DevicePath(addr network.Address) (domain.DevicePath, error) {
	return domain.DevicePath{}, fmt.Errorf("path from %s: %w", addr, network.ErrDanglingLink)
}

func TestGetDevicePathDanglingLink(t *testing.T) {
	srv := httptest.NewServer(httpapi.NewHandler(brokenInspector{}))
	defer srv.Close()

	resp := getJSON(t, srv.URL+"/devices/2/path", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	// Generate one resolution so the counter shows up.
	getJSON(t, srv.URL+"/devices/2/path", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "netgrid_path_resolutions_total")
}
