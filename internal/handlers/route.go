package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jwebster45206/portal-router/internal/metrics"
	"github.com/jwebster45206/portal-router/internal/services"
	"github.com/jwebster45206/portal-router/pkg/route"
)

type RouteHandler struct {
	log     *slog.Logger
	router  *route.Router
	cache   *services.RouteCache
	metrics *metrics.Registry
}

// NewRouteHandler answers route queries with router. cache and m may be nil.
func NewRouteHandler(log *slog.Logger, router *route.Router, cache *services.RouteCache, m *metrics.Registry) *RouteHandler {
	return &RouteHandler{
		log:     log,
		router:  router,
		cache:   cache,
		metrics: m,
	}
}

func (h *RouteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r, h.log) {
		return
	}

	q := r.URL.Query()
	start := route.Location(strings.TrimSpace(q.Get("start")))
	end := route.Location(strings.TrimSpace(q.Get("end")))
	if start == "" || end == "" {
		writeError(w, h.log, http.StatusBadRequest, "start and end are required")
		return
	}

	held, err := route.ParseCapabilities(q["capabilities"]...)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	var res route.Result
	if h.cache != nil {
		res = h.cache.Route(r.Context(), start, end, held)
	} else {
		began := time.Now()
		res = h.router.Route(start, end, held)
		if h.metrics != nil {
			h.metrics.RecordSearch(res, time.Since(began))
		}
	}

	h.log.Debug("Route resolved",
		"start", start,
		"end", end,
		"capabilities", held.String(),
		"outcome", res.Outcome.String(),
		"hops", res.Hops())

	writeJSON(w, h.log, http.StatusOK, res)
}
