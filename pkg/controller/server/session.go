package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/session"
	"github.com/m-mizutani/goerr/v2"
)

type ctxSessionKey struct{}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(ctxSessionKey{}).(*session.Session)
	return s
}

func loadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := types.SessionID(chi.URLParam(r, "session_id"))
			s, ok := store.Get(id)
			if !ok {
				writeError(w, r, goerr.Wrap(types.ErrNotFound, "session not found", goerr.V("session", id)))
				return
			}

			ctx := context.WithValue(r.Context(), ctxSessionKey{}, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type sessionResponse struct {
	*session.Snapshot
	Embed *model.Embed `json:"embed,omitempty"`
}

func writeSession(w http.ResponseWriter, code int, s *session.Session, sandboxHost string) {
	resp := sessionResponse{Snapshot: s.Snapshot()}
	if resp.SandboxID != "" {
		resp.Embed = model.NewEmbed(sandboxHost, resp.SandboxID)
	}
	writeJSON(w, code, resp)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

func createSession(store *session.Store, sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSession(w, http.StatusCreated, store.Create(), sandboxHost)
	}
}

func getSession(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSession(w, http.StatusOK, sessionFrom(r.Context()), sandboxHost)
	}
}

func deleteSession(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Delete(sessionFrom(r.Context()).ID())
		w.WriteHeader(http.StatusNoContent)
	}
}

func putRepository(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ref model.RepositoryRef
		if err := decodeBody(r, &ref); err != nil {
			writeError(w, r, err)
			return
		}

		s := sessionFrom(r.Context())
		s.SetRepositoryRef(r.Context(), ref.Owner, ref.Repo)
		writeSession(w, http.StatusOK, s, sandboxHost)
	}
}

type branchRequest struct {
	Branch types.BranchName `json:"branch"`
}

func putBranch(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req branchRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		s := sessionFrom(r.Context())
		s.SetBranch(req.Branch)
		writeSession(w, http.StatusOK, s, sandboxHost)
	}
}

// postLookupBranches resolves branches of the session repository without
// waiting for the quiet period.
func postLookupBranches(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r.Context())
		s.LookupBranches(r.Context())
		writeSession(w, http.StatusOK, s, sandboxHost)
	}
}

type binaryBaseURLRequest struct {
	BinaryBaseURL string `json:"binary_base_url"`
}

func putBinaryBaseURL(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req binaryBaseURLRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		s := sessionFrom(r.Context())
		s.SetBinaryBaseURL(req.BinaryBaseURL)
		writeSession(w, http.StatusOK, s, sandboxHost)
	}
}

func postSessionDeploy(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r.Context())
		if err := s.StartDeploy(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeSession(w, http.StatusAccepted, s, sandboxHost)
	}
}
