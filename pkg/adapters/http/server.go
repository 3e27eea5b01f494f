// Package http exposes a read-only inspection API over a device grid:
// device listings, single-device lookups, and hierarchical path derivation,
// plus Prometheus metrics for the surface itself.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/netgrid/internal/logging"
	"github.com/aretw0/netgrid/pkg/domain"
	"github.com/aretw0/netgrid/pkg/network"
)

// Inspector is the read surface the API serves. *grid.System satisfies it.
type Inspector interface {
	Devices() []domain.Device
	DeviceAt(addr network.Address) (domain.Device, bool)
	DevicePath(addr network.Address) (domain.DevicePath, error)
}

// Server wires the inspection routes over an Inspector.
type Server struct {
	insp    Inspector
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the server.
type Option func(*Server)

// WithLogger injects a request logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler creates the HTTP handler for the inspection API.
func NewHandler(insp Inspector, opts ...Option) http.Handler {
	s := &Server{
		insp:    insp,
		logger:  logging.NewNop(),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/devices", s.handleDevices)
	r.Get("/devices/{address}", s.handleDevice)
	r.Get("/devices/{address}/path", s.handleDevicePath)
	r.Handle("/metrics", s.metrics.Handler())
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// DeviceResponse is the JSON shape of one device.
type DeviceResponse struct {
	Address uint16 `json:"address"`
	Kind    string `json:"kind"`
	ID      string `json:"id"`
}

// PathResponse is the JSON shape of a derived device path.
type PathResponse struct {
	Address  uint16   `json:"address"`
	Path     string   `json:"path"`
	Segments []string `json:"segments"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.requests.WithLabelValues("healthz", "200").Inc()
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	devices := s.insp.Devices()
	resp := make([]DeviceResponse, 0, len(devices))
	for _, dev := range devices {
		resp = append(resp, DeviceResponse{
			Address: uint16(dev.Addr),
			Kind:    dev.Kind,
			ID:      dev.ID,
		})
	}
	s.metrics.requests.WithLabelValues("devices", "200").Inc()
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDevice(w http.ResponseWriter, r *http.Request) {
	addr, ok := s.parseAddress(w, r, "device")
	if !ok {
		return
	}

	dev, ok := s.insp.DeviceAt(addr)
	if !ok {
		s.metrics.requests.WithLabelValues("device", "404").Inc()
		http.Error(w, fmt.Sprintf("no device at %s", addr), http.StatusNotFound)
		return
	}

	s.metrics.requests.WithLabelValues("device", "200").Inc()
	s.writeJSON(w, http.StatusOK, DeviceResponse{
		Address: uint16(dev.Addr),
		Kind:    dev.Kind,
		ID:      dev.ID,
	})
}

func (s *Server) handleDevicePath(w http.ResponseWriter, r *http.Request) {
	addr, ok := s.parseAddress(w, r, "path")
	if !ok {
		return
	}

	path, err := s.insp.DevicePath(addr)
	if err != nil {
		switch {
		case errors.Is(err, network.ErrUnknownAddress):
			s.metrics.requests.WithLabelValues("path", "404").Inc()
			s.metrics.pathResolutions.WithLabelValues("unknown").Inc()
			http.Error(w, fmt.Sprintf("no device at %s", addr), http.StatusNotFound)
		default:
			// Dangling topology is a server-side integrity failure.
			s.metrics.requests.WithLabelValues("path", "500").Inc()
			s.metrics.pathResolutions.WithLabelValues("dangling").Inc()
			s.logger.Error("path resolution failed", "address", addr.String(), "err", err)
			http.Error(w, "path resolution failed", http.StatusInternalServerError)
		}
		return
	}

	s.metrics.requests.WithLabelValues("path", "200").Inc()
	s.metrics.pathResolutions.WithLabelValues("ok").Inc()
	s.writeJSON(w, http.StatusOK, PathResponse{
		Address:  uint16(addr),
		Path:     path.String(),
		Segments: path.Segments,
	})
}

func (s *Server) parseAddress(w http.ResponseWriter, r *http.Request, route string) (network.Address, bool) {
	raw := chi.URLParam(r, "address")
	value, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		s.metrics.requests.WithLabelValues(route, "400").Inc()
		s.logger.Warn("invalid address parameter", "raw", raw, "err", err)
		http.Error(w, "invalid address", http.StatusBadRequest)
		return 0, false
	}
	return network.Address(value), true
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
