package memory

import (
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
)

// New creates a new in-memory repository
func New() interfaces.DeploymentRepository {
	return &deploymentRepository{
		repos: make(map[string][]*model.Deployment),
	}
}
