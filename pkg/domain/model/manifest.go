package model

import (
	"net/url"
	"sort"
	"strings"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
)

type FileKind int

const (
	FileKindText FileKind = iota + 1
	FileKindBinary
)

func (x FileKind) String() string {
	switch x {
	case FileKindText:
		return "text"
	case FileKindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ClassifyContentType returns FileKindText for text/* media types and FileKindBinary for anything else, including an empty type.
func ClassifyContentType(contentType string) FileKind {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "text/") {
		return FileKindText
	}
	return FileKindBinary
}

// FileEntry is one file of a deployment. Content is the literal file body for
// text files and a URL the sandbox host fetches by itself for binary files.
type FileEntry struct {
	Path    string
	Kind    FileKind
	Content string
}

// Manifest maps branch-root-relative paths to their entries. It is always
// submitted as a whole.
type Manifest map[string]FileEntry

func NewManifest() Manifest {
	return Manifest{}
}

// Add inserts or replaces the entry of entry.Path.
func (x Manifest) Add(entry FileEntry) {
	x[entry.Path] = entry
}

// Paths returns all paths in lexical order.
func (x Manifest) Paths() []string {
	paths := make([]string, 0, len(x))
	for p := range x {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Count returns number of text and binary entries.
func (x Manifest) Count() (text, binary int) {
	for _, entry := range x {
		switch entry.Kind {
		case FileKindText:
			text++
		case FileKindBinary:
			binary++
		}
	}
	return text, binary
}

// DefineRequest is the body of the sandbox host's define endpoint.
type DefineRequest struct {
	Files map[string]DefineFile `json:"files"`
}

type DefineFile struct {
	Content  string `json:"content"`
	IsBinary bool   `json:"isBinary"`
}

type DefineResponse struct {
	SandboxID types.SandboxID `json:"sandbox_id"`
}

// ToDefineRequest converts the manifest to the wire form. An empty manifest
// becomes {"files":{}}.
func (x Manifest) ToDefineRequest() *DefineRequest {
	req := &DefineRequest{
		Files: make(map[string]DefineFile, len(x)),
	}
	for p, entry := range x {
		req.Files[p] = DefineFile{
			Content:  entry.Content,
			IsBinary: entry.Kind == FileKindBinary,
		}
	}
	return req
}

// FileURL builds {host}/{owner}/{repo}/{branch}/{path} escaping each path segment.
func FileURL(host string, ref RepositoryRef, branch types.BranchName, path string) string {
	segments := []string{
		strings.TrimRight(host, "/"),
		url.PathEscape(ref.Owner),
		url.PathEscape(ref.Repo),
		escapeSegments(string(branch)),
		escapeSegments(path),
	}
	return strings.Join(segments, "/")
}

func escapeSegments(p string) string {
	parts := strings.Split(p, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return strings.Join(parts, "/")
}
