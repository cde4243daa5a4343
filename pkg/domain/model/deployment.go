package model

import (
	"time"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
)

// Deployment is a history record of a successful deploy.
type Deployment struct {
	ID            types.DeploymentID `bigquery:"id" json:"id" firestore:"id"`
	Owner         string             `bigquery:"owner" json:"owner" firestore:"owner"`
	Repo          string             `bigquery:"repo" json:"repo" firestore:"repo"`
	Branch        types.BranchName   `bigquery:"branch" json:"branch" firestore:"branch"`
	BinaryBaseURL string             `bigquery:"binary_base_url" json:"binary_base_url" firestore:"binary_base_url"`
	SandboxID     types.SandboxID    `bigquery:"sandbox_id" json:"sandbox_id" firestore:"sandbox_id"`
	TextFiles     int                `bigquery:"text_files" json:"text_files" firestore:"text_files"`
	BinaryFiles   int                `bigquery:"binary_files" json:"binary_files" firestore:"binary_files"`
	CreatedAt     time.Time          `bigquery:"created_at" json:"created_at" firestore:"created_at"`
}

func (x *Deployment) Ref() RepositoryRef {
	return RepositoryRef{Owner: x.Owner, Repo: x.Repo}
}
