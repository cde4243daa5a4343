package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/repository"
	"github.com/m-mizutani/ghbox/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const DefaultTableName = "ghbox_deployments"

type deploymentRepository struct {
	db    *sql.DB
	table string
}

var _ interfaces.DeploymentRepository = (*deploymentRepository)(nil)

type Option func(*deploymentRepository)

func WithTableName(name string) Option {
	return func(x *deploymentRepository) {
		x.table = name
	}
}

// Open connects to PostgreSQL with lib/pq and creates the table if missing.
func Open(ctx context.Context, dsn types.PostgresDSN, options ...Option) (interfaces.DeploymentRepository, error) {
	db, err := sql.Open("postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open PostgreSQL connection")
	}
	if err := db.PingContext(ctx); err != nil {
		safe.Close(ctx, db)
		return nil, goerr.Wrap(err, "failed to connect PostgreSQL")
	}

	return New(ctx, db, options...)
}

// New creates a repository on an opened database and migrates its table.
func New(ctx context.Context, db *sql.DB, options ...Option) (interfaces.DeploymentRepository, error) {
	repo := &deploymentRepository{
		db:    db,
		table: DefaultTableName,
	}
	for _, opt := range options {
		opt(repo)
	}

	if err := repo.migrate(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *deploymentRepository) tableName() string {
	return pq.QuoteIdentifier(r.table)
}

func (r *deploymentRepository) migrate(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id              TEXT PRIMARY KEY,
			owner           TEXT NOT NULL,
			repo            TEXT NOT NULL,
			branch          TEXT NOT NULL,
			binary_base_url TEXT NOT NULL DEFAULT '',
			sandbox_id      TEXT NOT NULL,
			text_files      INTEGER NOT NULL DEFAULT 0,
			binary_files    INTEGER NOT NULL DEFAULT 0,
			created_at      TIMESTAMPTZ NOT NULL
		)`, r.tableName()),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (owner, repo, created_at DESC)`,
			pq.QuoteIdentifier(r.table+"_repo_created_at_idx"), r.tableName()),
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to migrate table", goerr.V("table", r.table))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit migration", goerr.V("table", r.table))
	}

	return nil
}

func (r *deploymentRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	ref := deployment.Ref()
	if !ref.IsComplete() || deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment has no repository or ID",
			goerr.V("repo", ref),
			goerr.V("id", deployment.ID),
		)
	}

	query := fmt.Sprintf(`INSERT INTO %s
		(id, owner, repo, branch, binary_base_url, sandbox_id, text_files, binary_files, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			repo = EXCLUDED.repo,
			branch = EXCLUDED.branch,
			binary_base_url = EXCLUDED.binary_base_url,
			sandbox_id = EXCLUDED.sandbox_id,
			text_files = EXCLUDED.text_files,
			binary_files = EXCLUDED.binary_files,
			created_at = EXCLUDED.created_at`, r.tableName())

	if _, err := r.db.ExecContext(ctx, query,
		deployment.ID.String(),
		deployment.Owner,
		deployment.Repo,
		deployment.Branch.String(),
		deployment.BinaryBaseURL,
		deployment.SandboxID.String(),
		deployment.TextFiles,
		deployment.BinaryFiles,
		deployment.CreatedAt,
	); err != nil {
		return goerr.Wrap(err, "failed to put deployment",
			goerr.V("repo", ref),
			goerr.V("id", deployment.ID),
		)
	}

	return nil
}

const selectColumns = `id, owner, repo, branch, binary_base_url, sandbox_id, text_files, binary_files, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDeployment(row scanner) (*model.Deployment, error) {
	var d model.Deployment
	if err := row.Scan(
		&d.ID,
		&d.Owner,
		&d.Repo,
		&d.Branch,
		&d.BinaryBaseURL,
		&d.SandboxID,
		&d.TextFiles,
		&d.BinaryFiles,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}

func (r *deploymentRepository) GetDeployment(ctx context.Context, ref model.RepositoryRef, id types.DeploymentID) (*model.Deployment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE owner = $1 AND repo = $2 AND id = $3`, selectColumns, r.tableName())

	d, err := scanDeployment(r.db.QueryRowContext(ctx, query, ref.Owner, ref.Repo, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
				goerr.V("repo", ref),
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get deployment",
			goerr.V("repo", ref),
			goerr.V("id", id),
		)
	}

	return d, nil
}

func (r *deploymentRepository) ListDeployments(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE owner = $1 AND repo = $2 ORDER BY created_at DESC`, selectColumns, r.tableName())
	args := []any{ref.Owner, ref.Repo}
	if limit > 0 {
		query += " LIMIT $3"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query deployments", goerr.V("repo", ref))
	}
	defer safe.Close(ctx, rows)

	deployments := []*model.Deployment{}
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan deployment", goerr.V("repo", ref))
		}
		deployments = append(deployments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate deployments", goerr.V("repo", ref))
	}

	return deployments, nil
}
