package handler

import "net/http"

// Public endpoint paths, in the order reported by the 404 response.
const (
	PathRoot     = "/"
	PathHealth   = "/health"
	PathStatus   = "/api/status"
	PathContact  = "/api/contact"
	PathIntake   = "/api/intake"
	PathCatering = "/api/catering"
)

func availableEndpoints() []string {
	return []string{PathRoot, PathHealth, PathStatus, PathContact, PathIntake, PathCatering}
}

const unmatchedRoute = "unmatched"

// routeLabel collapses unknown paths so metric cardinality stays bounded.
func routeLabel(path string) string {
	for _, p := range availableEndpoints() {
		if p == path {
			return p
		}
	}
	return unmatchedRoute
}

// exactPath sends any path that is not byte-for-byte a known endpoint to
// NotFound. ServeMux would otherwise answer "//health" or "/api/../health"
// with a redirect to the cleaned path.
func (h *Handler) exactPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if routeLabel(r.URL.Path) == unmatchedRoute {
			h.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter binds each method and literal path to one handler. Anything
// else, including a known path with the wrong method, falls through to NotFound.
//
// Middleware runs outermost first: request log, panic recovery, security
// headers, CORS, JSON body parsing, then exact path check and route match.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET "+PathHealth, h.Health)
	mux.HandleFunc("GET "+PathStatus, h.Status)
	mux.HandleFunc("POST "+PathContact, h.handle(h.Contact))
	mux.HandleFunc("POST "+PathIntake, h.handle(h.Intake))
	mux.HandleFunc("POST "+PathCatering, h.handle(h.Catering))
	mux.HandleFunc("/", h.NotFound)

	return h.RequestLogger(h.Recover(SecurityHeaders(CORS(h.JSONBody(h.exactPath(mux))))))
}
