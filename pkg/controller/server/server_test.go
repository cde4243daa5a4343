package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/ghbox/pkg/controller/server"
	"github.com/m-mizutani/ghbox/pkg/domain/mock"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra"
	"github.com/m-mizutani/ghbox/pkg/session"
	"github.com/m-mizutani/ghbox/pkg/usecase"
	"github.com/m-mizutani/ghbox/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func serve(srv *server.Server, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	srv := server.New(usecase.New(infra.New()))

	rec := serve(srv, http.MethodGet, "/health", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestGetBranches(t *testing.T) {
	t.Run("returns selection", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, ref model.RepositoryRef) (*model.BranchSelection, error) {
				gt.V(t, ref).Equal(model.RepositoryRef{Owner: "octocat", Repo: "hello-world"})
				return model.NewBranchSelection([]types.BranchName{"master", "test"}), nil
			},
		}
		srv := server.New(uc)

		rec := serve(srv, http.MethodGet, "/api/repos/octocat/hello-world/branches", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		got := decode[model.BranchSelection](t, rec)
		gt.V(t, got.Branches).Equal([]types.BranchName{"master", "test"})
		gt.V(t, got.Selected).Equal(types.BranchName("master"))
	})

	t.Run("lookup failure is bad gateway", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, ref model.RepositoryRef) (*model.BranchSelection, error) {
				return nil, goerr.Wrap(types.ErrLookup, "failed")
			},
		}
		srv := server.New(uc)

		rec := serve(srv, http.MethodGet, "/api/repos/octocat/nothing/branches", "")
		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
	})
}

func TestPostDeploy(t *testing.T) {
	t.Run("deploys and returns embed", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, error) {
				return &model.SandboxResult{ID: "abc123"}, nil
			},
		}
		srv := server.New(uc, server.WithSandboxHost("https://sandbox.example.com/"))

		rec := serve(srv, http.MethodPost, "/api/deploy",
			`{"owner":" octocat ","repo":"hello-world","branch":"master","binary_base_url":"https://cdn.example.com"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		got := decode[model.Embed](t, rec)
		gt.V(t, got.SandboxID).Equal(types.SandboxID("abc123"))
		gt.V(t, got.URL).Equal("https://sandbox.example.com/embed/abc123?view=split")
		gt.True(t, strings.Contains(got.IFrame, `src="https://sandbox.example.com/embed/abc123?view=split"`))

		input := uc.DeployCalls()[0].Input
		gt.V(t, input.RepositoryRef).Equal(model.RepositoryRef{Owner: "octocat", Repo: "hello-world"})
		gt.V(t, input.Branch).Equal(types.BranchName("master"))
		gt.V(t, input.BinaryBaseURL).Equal("https://cdn.example.com")
	})

	t.Run("missing branch is bad request", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := serve(srv, http.MethodPost, "/api/deploy", `{"owner":"octocat","repo":"hello-world"}`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, uc.DeployCalls()).Length(0)
	})

	t.Run("broken body is bad request", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := serve(srv, http.MethodPost, "/api/deploy", `{`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("pipeline failure is bad gateway", func(t *testing.T) {
		for _, sentinel := range []error{types.ErrEnumeration, types.ErrFileFetch, types.ErrSubmission} {
			uc := &mock.UseCaseMock{
				DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, error) {
					return nil, goerr.Wrap(sentinel, "failed", goerr.V("path", "c.txt"))
				},
			}
			srv := server.New(uc)

			rec := serve(srv, http.MethodPost, "/api/deploy", `{"owner":"octocat","repo":"hello-world","branch":"master"}`)
			gt.V(t, rec.Code).Equal(http.StatusBadGateway)
			gt.True(t, strings.Contains(rec.Body.String(), sentinel.Error()))
		}
	})
}

func TestGetDeployments(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListDeploymentsFunc: func(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error) {
				return []*model.Deployment{{ID: "d1", Owner: ref.Owner, Repo: ref.Repo, SandboxID: "abc"}}, nil
			},
		}
		srv := server.New(uc)

		rec := serve(srv, http.MethodGet, "/api/repos/octocat/hello-world/deployments", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, uc.ListDeploymentsCalls()[0].Limit).Equal(20)

		got := decode[struct {
			Deployments []*model.Deployment `json:"deployments"`
		}](t, rec)
		gt.A(t, got.Deployments).Length(1)
		gt.V(t, got.Deployments[0].SandboxID).Equal(types.SandboxID("abc"))
	})

	t.Run("explicit limit", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListDeploymentsFunc: func(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error) {
				return []*model.Deployment{}, nil
			},
		}
		srv := server.New(uc)

		rec := serve(srv, http.MethodGet, "/api/repos/octocat/hello-world/deployments?limit=5", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, uc.ListDeploymentsCalls()[0].Limit).Equal(5)
	})

	t.Run("invalid limit", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := serve(srv, http.MethodGet, "/api/repos/octocat/hello-world/deployments?limit=x", "")
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestGetEmbed(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	t.Run("renders iframe", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/embed/abc123", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("text/html; charset=utf-8")
		body := rec.Body.String()
		gt.True(t, strings.Contains(body, `<iframe`))
		gt.True(t, strings.Contains(body, `src="https://codesandbox.io/embed/abc123?view=split"`))
		gt.True(t, strings.Contains(body, `sandbox="allow-forms allow-modals allow-popups allow-presentation allow-same-origin allow-scripts"`))
	})

	t.Run("rejects invalid ID", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/embed/abc%22onload", "")
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestSessionAPI(t *testing.T) {
	gh := &mock.GitHubMock{
		ListBranchesFunc: func(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error) {
			return []types.BranchName{"main", "master"}, nil
		},
	}
	release := make(chan struct{})
	uc := &mock.UseCaseMock{
		DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, error) {
			<-release
			return &model.SandboxResult{ID: "sb1"}, nil
		},
	}
	store := session.NewStore(gh, uc, session.WithQuietPeriod(time.Millisecond))
	t.Cleanup(store.Close)
	srv := server.New(uc, server.WithSessionStore(store))

	type resp struct {
		session.Snapshot
		Embed *model.Embed `json:"embed"`
	}

	rec := serve(srv, http.MethodPost, "/api/sessions/", "")
	gt.V(t, rec.Code).Equal(http.StatusCreated)
	created := decode[resp](t, rec)
	gt.V(t, created.ID).NotEqual(types.SessionID(""))
	base := "/api/sessions/" + string(created.ID)

	t.Run("unknown session", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/api/sessions/nothing/", "")
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("repository resolves branches", func(t *testing.T) {
		rec := serve(srv, http.MethodPut, base+"/repository", `{"owner":"octocat ","repo":" hello-world"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		got := decode[resp](t, rec)
		gt.V(t, got.Owner).Equal("octocat")
		gt.V(t, got.Repo).Equal("hello-world")

		var snapshot resp
		testutil.Eventually(t, 2*time.Second, func() bool {
			snapshot = decode[resp](t, serve(srv, http.MethodGet, base+"/", ""))
			return snapshot.Branch != ""
		})
		gt.V(t, snapshot.Branches).Equal([]types.BranchName{"main", "master"})
		gt.V(t, snapshot.Branch).Equal(types.BranchName("master"))
	})

	t.Run("branch and binary base URL", func(t *testing.T) {
		rec := serve(srv, http.MethodPut, base+"/branch", `{"branch":"main"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[resp](t, rec).Branch).Equal(types.BranchName("main"))

		rec = serve(srv, http.MethodPut, base+"/binary-base-url", `{"binary_base_url":"https://cdn.example.com"}`)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decode[resp](t, rec).BinaryBaseURL).Equal("https://cdn.example.com")

		rec = serve(srv, http.MethodPut, base+"/branch", `{`)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("deploy runs in background", func(t *testing.T) {
		rec := serve(srv, http.MethodPost, base+"/deploy", "")
		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.True(t, decode[resp](t, rec).Busy)

		rec = serve(srv, http.MethodPost, base+"/deploy", "")
		gt.V(t, rec.Code).Equal(http.StatusConflict)

		close(release)

		var snapshot resp
		testutil.Eventually(t, 2*time.Second, func() bool {
			snapshot = decode[resp](t, serve(srv, http.MethodGet, base+"/", ""))
			return !snapshot.Busy
		})
		gt.False(t, snapshot.Busy)
		gt.V(t, snapshot.SandboxID).Equal(types.SandboxID("sb1"))
		gt.True(t, snapshot.Embed != nil)
		gt.V(t, snapshot.Embed.URL).Equal("https://codesandbox.io/embed/sb1?view=split")

		input := uc.DeployCalls()[0].Input
		gt.V(t, input.Branch).Equal(types.BranchName("main"))
		gt.V(t, input.BinaryBaseURL).Equal("https://cdn.example.com")
	})

	t.Run("delete", func(t *testing.T) {
		rec := serve(srv, http.MethodDelete, base+"/", "")
		gt.V(t, rec.Code).Equal(http.StatusNoContent)

		rec = serve(srv, http.MethodGet, base+"/", "")
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestSessionLookupBranches(t *testing.T) {
	gh := &mock.GitHubMock{
		ListBranchesFunc: func(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error) {
			return []types.BranchName{"develop", "master"}, nil
		},
	}
	store := session.NewStore(gh, &mock.UseCaseMock{}, session.WithQuietPeriod(time.Hour))
	t.Cleanup(store.Close)
	srv := server.New(&mock.UseCaseMock{}, server.WithSessionStore(store))

	created := decode[session.Snapshot](t, serve(srv, http.MethodPost, "/api/sessions/", ""))
	base := "/api/sessions/" + string(created.ID)

	rec := serve(srv, http.MethodPut, base+"/repository", `{"owner":"octocat","repo":"hello-world"}`)
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, decode[session.Snapshot](t, rec).Branch).Equal(types.BranchName(""))

	rec = serve(srv, http.MethodPost, base+"/branches", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	got := decode[session.Snapshot](t, rec)
	gt.V(t, got.Branches).Equal([]types.BranchName{"develop", "master"})
	gt.V(t, got.Branch).Equal(types.BranchName("master"))
	gt.A(t, gh.ListBranchesCalls()).Length(1)

	rec = serve(srv, http.MethodPost, "/api/sessions/nothing/branches", "")
	gt.V(t, rec.Code).Equal(http.StatusNotFound)
}
