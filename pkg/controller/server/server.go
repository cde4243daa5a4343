package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/session"
	"github.com/m-mizutani/ghbox/pkg/utils/errutil"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, types.ErrLookup),
		errors.Is(err, types.ErrEnumeration),
		errors.Is(err, types.ErrFileFetch),
		errors.Is(err, types.ErrSubmission),
		errors.Is(err, types.ErrRateLimited):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCodeOf(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "fail to handle request", err)
	} else {
		logging.From(r.Context()).Info("request rejected", "error", err, "status", code)
	}

	writeJSON(w, code, errorResponse{Error: err.Error()})
}

type config struct {
	sessions    *session.Store
	sandboxHost string
}

type Option func(*config)

// WithSessionStore enables the session API.
func WithSessionStore(store *session.Store) Option {
	return func(cfg *config) {
		cfg.sessions = store
	}
}

// WithSandboxHost sets the host embed URLs point to.
func WithSandboxHost(host string) Option {
	return func(cfg *config) {
		cfg.sandboxHost = host
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		sandboxHost: types.DefaultCodeSandboxURL,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/repos/{owner}/{repo}", func(r chi.Router) {
			r.Get("/branches", getBranches(uc))
			r.Get("/deployments", getDeployments(uc))
		})
		r.Post("/deploy", postDeploy(uc, cfg.sandboxHost))

		if cfg.sessions != nil {
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", createSession(cfg.sessions, cfg.sandboxHost))
				r.Route("/{session_id}", func(r chi.Router) {
					r.Use(loadSession(cfg.sessions))
					r.Get("/", getSession(cfg.sandboxHost))
					r.Delete("/", deleteSession(cfg.sessions))
					r.Put("/repository", putRepository(cfg.sandboxHost))
					r.Post("/branches", postLookupBranches(cfg.sandboxHost))
					r.Put("/branch", putBranch(cfg.sandboxHost))
					r.Put("/binary-base-url", putBinaryBaseURL(cfg.sandboxHost))
					r.Post("/deploy", postSessionDeploy(cfg.sandboxHost))
				})
			})
		}
	})

	r.Get("/embed/{sandbox_id}", getEmbed(cfg.sandboxHost))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
