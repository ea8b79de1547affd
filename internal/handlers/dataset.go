package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jwebster45206/portal-router/pkg/route"
)

type LocationsResponse struct {
	Locations []route.Location `json:"locations"`
}

type EdgesResponse struct {
	Capabilities route.CapabilitySet `json:"capabilities"`
	Edges        []route.Edge        `json:"edges"`
}

// LocationsHandler serves the sorted list of known locations.
type LocationsHandler struct {
	log     *slog.Logger
	dataset *route.Dataset
}

func NewLocationsHandler(log *slog.Logger, dataset *route.Dataset) *LocationsHandler {
	return &LocationsHandler{
		log:     log,
		dataset: dataset,
	}
}

func (h *LocationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r, h.log) {
		return
	}
	writeJSON(w, h.log, http.StatusOK, LocationsResponse{Locations: h.dataset.Locations()})
}

// EdgesHandler serves the edges that are active for the requested
// capabilities, in dataset order.
type EdgesHandler struct {
	log     *slog.Logger
	dataset *route.Dataset
}

func NewEdgesHandler(log *slog.Logger, dataset *route.Dataset) *EdgesHandler {
	return &EdgesHandler{
		log:     log,
		dataset: dataset,
	}
}

func (h *EdgesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r, h.log) {
		return
	}

	held, err := route.ParseCapabilities(r.URL.Query()["capabilities"]...)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.log, http.StatusOK, EdgesResponse{
		Capabilities: held,
		Edges:        h.dataset.Filter(held),
	})
}
