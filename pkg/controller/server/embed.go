package server

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var sandboxIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var embedPage = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .SandboxID }}</title>
</head>
<body>
{{ .IFrame }}
<p><a href="{{ .URL }}">{{ .URL }}</a></p>
</body>
</html>
`))

func getEmbed(sandboxHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sandbox_id")
		if !sandboxIDPattern.MatchString(id) {
			writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid sandbox ID", goerr.V("sandbox_id", id)))
			return
		}

		embed := model.NewEmbed(sandboxHost, types.SandboxID(id))

		var buf bytes.Buffer
		if err := embedPage.Execute(&buf, struct {
			SandboxID string
			URL       string
			IFrame    template.HTML
		}{
			SandboxID: id,
			URL:       embed.URL,
			// IFrame is built from a validated ID and fixed attributes.
			IFrame: template.HTML(embed.IFrame), // #nosec G203
		}); err != nil {
			logging.From(r.Context()).Error("fail to render embed page", slog.Any("error", err))
			writeError(w, r, goerr.Wrap(err, "fail to render embed page"))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		safeWrite(w, http.StatusOK, buf.Bytes())
	}
}
