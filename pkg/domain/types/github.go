package types

type BranchName string

// DefaultBranchName is selected automatically when a branch lookup returns it.
const DefaultBranchName BranchName = "master"

func (x BranchName) String() string { return string(x) }

const (
	DefaultGitHubAPIURL   = "https://api.github.com/"
	DefaultRawContentURL  = "https://raw.githubusercontent.com"
	DefaultCodeSandboxURL = "https://codesandbox.io"
)
