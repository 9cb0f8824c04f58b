package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"constructax/internal/models"
)

// ErrNotOwned is returned when a record does not exist or belongs to
// another user. Callers cannot distinguish the two cases on purpose.
var ErrNotOwned = errors.New("project not found or access denied")

// CascadeResult reports how many descendant rows a project delete removed.
type CascadeResult struct {
	PhasesDeleted       int64 `json:"phasesDeleted"`
	DailyLogsDeleted    int64 `json:"dailyLogsDeleted"`
	MaterialLogsDeleted int64 `json:"materialLogsDeleted"`
}

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, user_id, name, start_date, estimated_cost, status, completed_date, project_image_url, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.StartDate,
		&p.EstimatedCost,
		&p.Status,
		&p.CompletedDate,
		&p.ProjectImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(project *models.Project) error {
	ctx := context.Background()

	project.Prepare()

	query := `
		INSERT INTO projects (id, user_id, name, start_date, estimated_cost, status, completed_date, project_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.UserID,
		project.Name,
		project.StartDate,
		project.EstimatedCost,
		project.Status,
		project.CompletedDate,
		project.ProjectImageURL,
	)

	return translateError(err)
}

func (r *ProjectRepository) GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.Project, error) {
	ctx := context.Background()

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2`

	project, err := scanProject(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return project, nil
}

func (r *ProjectRepository) GetByUserID(userID uuid.UUID) ([]models.Project, error) {
	ctx := context.Background()

	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) Update(project *models.Project) error {
	ctx := context.Background()

	query := `
		UPDATE projects SET
			name = $2, start_date = $3, estimated_cost = $4, status = $5,
			completed_date = $6, project_image_url = $7, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Name,
		project.StartDate,
		project.EstimatedCost,
		project.Status,
		project.CompletedDate,
		project.ProjectImageURL,
	)

	return translateError(err)
}

// DeleteCascadeByIDAndUserID removes a project together with every phase,
// daily log and material log under it, child-first, inside one transaction.
// Either the whole tree goes or nothing does.
func (r *ProjectRepository) DeleteCascadeByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*CascadeResult, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	defer tx.Rollback(ctx)

	// Ownership check before any row is touched.
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1 AND user_id = $2)`,
		id, userID,
	).Scan(&exists)
	if err != nil {
		return nil, translateError(err)
	}
	if !exists {
		return nil, ErrNotOwned
	}

	result := &CascadeResult{}

	ct, err := tx.Exec(ctx,
		`DELETE FROM daily_logs WHERE phase_id IN (SELECT id FROM phases WHERE project_id = $1)`, id)
	if err != nil {
		return nil, translateError(err)
	}
	result.DailyLogsDeleted = ct.RowsAffected()

	ct, err = tx.Exec(ctx, `DELETE FROM material_logs WHERE project_id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	result.MaterialLogsDeleted = ct.RowsAffected()

	ct, err = tx.Exec(ctx, `DELETE FROM phases WHERE project_id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	result.PhasesDeleted = ct.RowsAffected()

	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translateError(err)
	}

	return result, nil
}
