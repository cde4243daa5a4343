package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/repository/postgres"
	"github.com/m-mizutani/ghbox/pkg/repository/testhelper"
	"github.com/m-mizutani/ghbox/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestPostgresDeploymentRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	ctx := context.Background()
	table := fmt.Sprintf("ghbox_test_%d", time.Now().UnixNano())
	repo, err := postgres.Open(ctx, types.PostgresDSN(dsn), postgres.WithTableName(table))
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestOpenInvalidDSN(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := postgres.Open(ctx, types.PostgresDSN("postgres://ghbox@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"))
	gt.Error(t, err)
}
