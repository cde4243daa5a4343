package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
)

// SandboxResult is set only after a deploy has completed successfully.
type SandboxResult struct {
	ID types.SandboxID `json:"sandbox_id"`
}

const (
	embedAllow   = "accelerometer; ambient-light-sensor; camera; encrypted-media; geolocation; gyroscope; hid; microphone; midi; payment; usb; vr; xr-spatial-tracking"
	embedSandbox = "allow-forms allow-modals allow-popups allow-presentation allow-same-origin allow-scripts"
	embedStyle   = "width:100%; height:500px; border:0; border-radius: 4px; overflow:hidden;"
)

// Embed is a viewer of a created sandbox.
type Embed struct {
	SandboxID types.SandboxID `json:"sandbox_id"`
	URL       string          `json:"embed_url"`
	IFrame    string          `json:"iframe"`
}

// NewEmbed builds the embed URL and iframe snippet for id on the sandbox host.
func NewEmbed(sandboxHost string, id types.SandboxID) *Embed {
	embedURL := fmt.Sprintf("%s/embed/%s?view=split", strings.TrimRight(sandboxHost, "/"), id)

	iframe := fmt.Sprintf(`<iframe
  src="%s"
  style="%s"
  allow="%s"
  sandbox="%s"
></iframe>`, embedURL, embedStyle, embedAllow, embedSandbox)

	return &Embed{
		SandboxID: id,
		URL:       embedURL,
		IFrame:    iframe,
	}
}
