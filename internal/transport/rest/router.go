package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Library *LibraryHandler
	Study   *StudyHandler
	Stats   *StatsHandler
	Profile *ProfileHandler
}

// NewRouter registers all routes. Probes are public; everything under /api
// runs through the api middlewares (auth, rate limiting) in order.
func NewRouter(h Handlers, api ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(routeNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	// Subrouters resolve misses themselves, so they need their own handlers.
	s := r.PathPrefix("/api").Subrouter()
	s.NotFoundHandler = http.HandlerFunc(routeNotFound)
	s.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	s.Use(api...)

	s.HandleFunc("/libraries", h.Library.List).Methods(http.MethodGet)
	s.HandleFunc("/libraries", h.Library.Create).Methods(http.MethodPost)
	s.HandleFunc("/libraries/{id}", h.Library.Delete).Methods(http.MethodDelete)
	s.HandleFunc("/libraries/{id}/sections", h.Library.ListSections).Methods(http.MethodGet)
	s.HandleFunc("/libraries/{id}/sections", h.Library.CreateSection).Methods(http.MethodPost)
	s.HandleFunc("/libraries/{id}/items", h.Library.ListItems).Methods(http.MethodGet)
	s.HandleFunc("/libraries/{id}/items", h.Library.CreateItem).Methods(http.MethodPost)

	s.HandleFunc("/study/sessions", h.Study.Start).Methods(http.MethodPost)
	s.HandleFunc("/study/sessions/{id}", h.Study.Get).Methods(http.MethodGet)
	s.HandleFunc("/study/sessions/{id}", h.Study.Discard).Methods(http.MethodDelete)
	s.HandleFunc("/study/sessions/{id}/flip", h.Study.Flip).Methods(http.MethodPost)
	s.HandleFunc("/study/sessions/{id}/outcome", h.Study.Outcome).Methods(http.MethodPost)

	s.HandleFunc("/stats/recent", h.Stats.Recent).Methods(http.MethodGet)
	s.HandleFunc("/stats/streak", h.Stats.Streak).Methods(http.MethodGet)
	s.HandleFunc("/stats/distribution", h.Stats.Distribution).Methods(http.MethodGet)
	s.HandleFunc("/stats/activity", h.Stats.Activity).Methods(http.MethodGet)
	s.HandleFunc("/stats/overview", h.Stats.Overview).Methods(http.MethodGet)

	s.HandleFunc("/profile", h.Profile.Get).Methods(http.MethodGet)
	s.HandleFunc("/profile/nickname", h.Profile.UpdateNickname).Methods(http.MethodPatch)

	return r
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
