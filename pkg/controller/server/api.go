package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const defaultDeploymentsLimit = 20

func repositoryRefFromPath(r *http.Request) model.RepositoryRef {
	return model.NewRepositoryRef(chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
}

func getBranches(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selection, err := uc.ListBranches(r.Context(), repositoryRefFromPath(r))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, selection)
	}
}

type deploymentsResponse struct {
	Deployments []*model.Deployment `json:"deployments"`
}

func getDeployments(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultDeploymentsLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid limit", goerr.V("limit", v)))
				return
			}
			limit = n
		}

		deployments, err := uc.ListDeployments(r.Context(), repositoryRefFromPath(r), limit)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, deploymentsResponse{Deployments: deployments})
	}
}

func postDeploy(uc interfaces.UseCase, sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.DeployInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error())))
			return
		}
		input.RepositoryRef = model.NewRepositoryRef(input.Owner, input.Repo)

		if !input.IsResolved() {
			writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "owner, repo and branch are required",
				goerr.V("repo", input.RepositoryRef),
				goerr.V("branch", input.Branch),
			))
			return
		}

		result, err := uc.Deploy(r.Context(), &input)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if result == nil {
			writeError(w, r, goerr.New("deploy finished without sandbox", goerr.V("repo", input.RepositoryRef)))
			return
		}

		writeJSON(w, http.StatusOK, model.NewEmbed(sandboxHost, result.ID))
	}
}
