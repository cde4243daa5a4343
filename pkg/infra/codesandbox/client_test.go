package codesandbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra/codesandbox"
	"github.com/m-mizutani/gt"
)

func TestDefine(t *testing.T) {
	t.Run("posts files and returns sandbox ID", func(t *testing.T) {
		var received map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/api/v1/sandboxes/define")
			gt.V(t, r.URL.Query().Get("json")).Equal("1")
			gt.V(t, r.Header.Get("Content-Type")).Equal("application/json")

			body := gt.R1(io.ReadAll(r.Body)).NoError(t)
			gt.NoError(t, json.Unmarshal(body, &received))
			fmt.Fprint(w, `{"sandbox_id":"abc123"}`)
		}))
		defer srv.Close()

		client := codesandbox.New(codesandbox.WithBaseURL(srv.URL+"/"), codesandbox.WithHTTPClient(srv.Client()))
		gt.V(t, client.BaseURL()).Equal(srv.URL)

		req := &model.DefineRequest{
			Files: map[string]model.DefineFile{
				"README":   {Content: "Hello World!\n"},
				"logo.png": {Content: "https://raw.githubusercontent.com/o/r/master/logo.png", IsBinary: true},
			},
		}
		id := gt.R1(client.Define(context.Background(), req)).NoError(t)
		gt.V(t, id).Equal(types.SandboxID("abc123"))

		files, ok := received["files"].(map[string]any)
		gt.True(t, ok)
		readme := files["README"].(map[string]any)
		gt.V(t, readme["content"]).Equal("Hello World!\n")
		gt.V(t, readme["isBinary"]).Equal(false)
		logo := files["logo.png"].(map[string]any)
		gt.V(t, logo["isBinary"]).Equal(true)
	})

	t.Run("empty manifest is sent as empty object", func(t *testing.T) {
		var raw string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw = string(gt.R1(io.ReadAll(r.Body)).NoError(t))
			fmt.Fprint(w, `{"sandbox_id":"empty1"}`)
		}))
		defer srv.Close()

		client := codesandbox.New(codesandbox.WithBaseURL(srv.URL))
		req := model.NewManifest().ToDefineRequest()
		id := gt.R1(client.Define(context.Background(), req)).NoError(t)
		gt.V(t, id).Equal(types.SandboxID("empty1"))
		gt.V(t, raw).Equal(`{"files":{}}`)
	})

	t.Run("non-2xx status is a submission error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"errors":["boom"]}`)
		}))
		defer srv.Close()

		client := codesandbox.New(codesandbox.WithBaseURL(srv.URL))
		_, err := client.Define(context.Background(), model.NewManifest().ToDefineRequest())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrSubmission))
	})

	t.Run("missing sandbox_id is a submission error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		}))
		defer srv.Close()

		client := codesandbox.New(codesandbox.WithBaseURL(srv.URL))
		_, err := client.Define(context.Background(), model.NewManifest().ToDefineRequest())
		gt.True(t, errors.Is(err, types.ErrSubmission))
	})

	t.Run("transport failure is a submission error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := codesandbox.New(codesandbox.WithBaseURL(srv.URL))
		_, err := client.Define(context.Background(), model.NewManifest().ToDefineRequest())
		gt.True(t, errors.Is(err, types.ErrSubmission))
	})
}
