package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// SandboxID is an opaque identifier issued by the sandbox host.
type SandboxID string

func (x SandboxID) String() string { return string(x) }

type DeploymentID string

func NewDeploymentID() DeploymentID {
	return DeploymentID(uuid.NewString())
}

func (x DeploymentID) String() string { return string(x) }

type SessionID string

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (x SessionID) String() string { return string(x) }
