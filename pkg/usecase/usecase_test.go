package usecase_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ghbox/pkg/infra"
	"github.com/m-mizutani/ghbox/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type rawFile struct {
	contentType string
	body        string
	status      int
}

// newRawHost serves files keyed by URL path such as "/octocat/hello-world/master/README".
func newRawHost(t *testing.T, files map[string]rawFile) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", f.contentType)
		if f.status != 0 {
			w.WriteHeader(f.status)
		}
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	uc := usecase.New(infra.New(), usecase.WithRawContentURL("http://localhost"), usecase.WithFetchConcurrency(4))
	gt.V(t, uc).NotEqual(nil)
}
