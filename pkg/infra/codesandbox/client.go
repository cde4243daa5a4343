package codesandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/ghbox/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	definePath = "/api/v1/sandboxes/define?json=1"

	// maxErrorBody limits how much of an error response is kept in the error.
	maxErrorBody = 4096
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits manifests to the CodeSandbox define API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

var _ interfaces.Sandbox = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(options ...Option) *Client {
	client := &Client{
		baseURL:    types.DefaultCodeSandboxURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client
}

// BaseURL returns the sandbox host without trailing slash.
func (x *Client) BaseURL() string {
	return x.baseURL
}

// Define implements interfaces.Sandbox.
func (x *Client) Define(ctx context.Context, req *model.DefineRequest) (types.SandboxID, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal define request")
	}

	endpoint := x.baseURL + definePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(types.ErrSubmission, "failed to create define request", goerr.V("url", endpoint), goerr.V("cause", err.Error()))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	logging.From(ctx).Debug("submitting manifest", "url", endpoint, "files", len(req.Files))

	resp, err := x.httpClient.Do(httpReq)
	if err != nil {
		return "", goerr.Wrap(types.ErrSubmission, "failed to send define request", goerr.V("url", endpoint), goerr.V("cause", err.Error()))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", goerr.Wrap(types.ErrSubmission, "sandbox host rejected manifest",
			goerr.V("url", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	var out model.DefineResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", goerr.Wrap(types.ErrSubmission, "failed to decode define response", goerr.V("url", endpoint), goerr.V("cause", err.Error()))
	}
	if out.SandboxID == "" {
		return "", goerr.Wrap(types.ErrSubmission, "define response has no sandbox_id", goerr.V("url", endpoint))
	}

	return out.SandboxID, nil
}
