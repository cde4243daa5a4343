package cli_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/ghbox/pkg/cli"
	"github.com/m-mizutani/gt"
)

type fakeHosts struct {
	github  *httptest.Server
	raw     *httptest.Server
	sandbox *httptest.Server

	mu      sync.Mutex
	defined []map[string]any
}

func newFakeHosts(t *testing.T) *fakeHosts {
	x := &fakeHosts{}

	x.github = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/repos/octocat/hello-world/branches":
			_, _ = io.WriteString(w, `[{"name":"master"},{"name":"test"}]`)
		case "/repos/octocat/hello-world/git/trees/master":
			_, _ = io.WriteString(w, `{"sha":"7fd1a60","truncated":false,"tree":[{"path":"README","type":"blob"},{"path":"docs","type":"tree"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Not Found"}`)
		}
	}))
	t.Cleanup(x.github.Close)

	x.raw = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/octocat/hello-world/master/README" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "Hello World!\n")
	}))
	t.Cleanup(x.raw.Close)

	x.sandbox = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		x.mu.Lock()
		x.defined = append(x.defined, body)
		x.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"sandbox_id":"abc123"}`)
	}))
	t.Cleanup(x.sandbox.Close)

	return x
}

func (x *fakeHosts) args() []string {
	return []string{
		"--github-api-url", x.github.URL,
		"--github-raw-url", x.raw.URL,
		"--codesandbox-url", x.sandbox.URL,
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := cli.New(cli.WithOutput(&buf)).Run(append([]string{"ghbox", "-l", "error"}, args...))
	return buf.String(), err
}

func TestDeployCommand(t *testing.T) {
	hosts := newFakeHosts(t)

	out, err := run(t, append([]string{"deploy",
		"--owner", "octocat",
		"--repo", "hello-world",
		"--no-progress",
	}, hosts.args()...)...)
	gt.NoError(t, err)

	gt.True(t, strings.Contains(out, "Sandbox: abc123"))
	gt.True(t, strings.Contains(out, "URL: "+hosts.sandbox.URL+"/embed/abc123?view=split"))
	gt.True(t, strings.Contains(out, "<iframe"))

	gt.A(t, hosts.defined).Length(1)
	files := hosts.defined[0]["files"].(map[string]any)
	gt.V(t, len(files)).Equal(1)
	readme := files["README"].(map[string]any)
	gt.V(t, readme["content"]).Equal("Hello World!\n")
	gt.V(t, readme["isBinary"]).Equal(false)
}

func TestDeployCommandUnknownRepository(t *testing.T) {
	hosts := newFakeHosts(t)

	_, err := run(t, append([]string{"deploy",
		"--owner", "octocat",
		"--repo", "nothing",
		"--no-progress",
	}, hosts.args()...)...)
	gt.Error(t, err)
	gt.A(t, hosts.defined).Length(0)
}

func TestBranchesCommand(t *testing.T) {
	hosts := newFakeHosts(t)

	out, err := run(t, append([]string{"branches", "--owner", "octocat", "--repo", "hello-world"}, hosts.args()...)...)
	gt.NoError(t, err)
	gt.V(t, out).Equal("* master\n  test\n")
}

func TestBatchCommand(t *testing.T) {
	hosts := newFakeHosts(t)

	path := filepath.Join(t.TempDir(), "targets.toml")
	gt.NoError(t, os.WriteFile(path, []byte(`
[[target]]
owner = "octocat"
repo = "hello-world"

[[target]]
owner = "octocat"
repo = "nothing"
branch = "main"
`), 0600))

	out, err := run(t, append([]string{"batch", "--file", path, "--no-progress"}, hosts.args()...)...)
	gt.Error(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	gt.A(t, lines).Length(2)
	gt.True(t, strings.HasPrefix(lines[0], "octocat/hello-world\tmaster\tabc123\t"))
	gt.True(t, strings.HasPrefix(lines[1], "octocat/nothing\tmain\tERROR\t"))
	gt.A(t, hosts.defined).Length(1)
}

func TestBatchCommandInvalidFile(t *testing.T) {
	hosts := newFakeHosts(t)

	path := filepath.Join(t.TempDir(), "targets.toml")
	gt.NoError(t, os.WriteFile(path, []byte("[[target]]\nowner = \"octocat\"\n"), 0600))

	_, err := run(t, append([]string{"batch", "--file", path}, hosts.args()...)...)
	gt.Error(t, err)
	gt.A(t, hosts.defined).Length(0)
}
