package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrNotFound         = goerr.New("not found")
	ErrRateLimited      = goerr.New("rate limit exceeded")

	// ErrLookup is raised when a branch list can not be retrieved. The branch
	// resolver absorbs it and resets its state.
	ErrLookup = goerr.New("branch lookup failed")

	// ErrEnumeration is raised when the file tree of a branch can not be retrieved.
	ErrEnumeration = goerr.New("file enumeration failed")

	// ErrFileFetch is raised when one file of the tree can not be fetched. The
	// error carries the failed path as "path" value.
	ErrFileFetch = goerr.New("file fetch failed")

	// ErrSubmission is raised when the sandbox host rejects the manifest.
	ErrSubmission = goerr.New("sandbox submission failed")

	// ErrBusy is raised when a deploy is requested while another one is running.
	ErrBusy = goerr.New("deploy already in progress")
)
