package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"constructax/internal/models"
)

type PhaseRepository struct {
	pool *pgxpool.Pool
}

func NewPhaseRepository(pool *pgxpool.Pool) *PhaseRepository {
	return &PhaseRepository{pool: pool}
}

const phaseColumns = `id, project_id, phase_name, work_type, start_date, phase_cost, total_quantity, progress, status, images, created_at, updated_at`

func scanPhase(row pgx.Row) (*models.Phase, error) {
	var p models.Phase
	err := row.Scan(
		&p.ID,
		&p.ProjectID,
		&p.PhaseName,
		&p.WorkType,
		&p.StartDate,
		&p.PhaseCost,
		&p.TotalQuantity,
		&p.Progress,
		&p.Status,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhaseRepository) Create(phase *models.Phase) error {
	ctx := context.Background()

	phase.Prepare()

	query := `
		INSERT INTO phases (id, project_id, phase_name, work_type, start_date, phase_cost, total_quantity, progress, status, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		phase.ID,
		phase.ProjectID,
		phase.PhaseName,
		phase.WorkType,
		phase.StartDate,
		phase.PhaseCost,
		phase.TotalQuantity,
		phase.Progress,
		phase.Status,
		phase.Images,
	)

	return translateError(err)
}

func (r *PhaseRepository) GetByID(projectID, phaseID uuid.UUID) (*models.Phase, error) {
	ctx := context.Background()

	query := `SELECT ` + phaseColumns + ` FROM phases WHERE id = $1 AND project_id = $2`

	phase, err := scanPhase(r.pool.QueryRow(ctx, query, phaseID, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return phase, nil
}

func (r *PhaseRepository) GetByProjectID(projectID uuid.UUID) ([]models.Phase, error) {
	ctx := context.Background()

	query := `SELECT ` + phaseColumns + ` FROM phases WHERE project_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var phases []models.Phase
	for rows.Next() {
		phase, err := scanPhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, *phase)
	}

	return phases, rows.Err()
}

func (r *PhaseRepository) Update(phase *models.Phase) error {
	ctx := context.Background()

	query := `
		UPDATE phases SET
			phase_name = $2, work_type = $3, start_date = $4, phase_cost = $5,
			total_quantity = $6, progress = $7, status = $8, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		phase.ID,
		phase.PhaseName,
		phase.WorkType,
		phase.StartDate,
		phase.PhaseCost,
		phase.TotalQuantity,
		phase.Progress,
		phase.Status,
	)

	return translateError(err)
}

// AppendImages adds URLs to the end of the stored list, preserving the
// existing order, and returns the updated list.
func (r *PhaseRepository) AppendImages(phaseID uuid.UUID, urls []string) ([]string, error) {
	ctx := context.Background()

	query := `UPDATE phases SET images = images || $2, updated_at = NOW() WHERE id = $1 RETURNING images`

	var images []string
	if err := r.pool.QueryRow(ctx, query, phaseID, urls).Scan(&images); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotOwned
		}
		return nil, translateError(err)
	}
	return images, nil
}

// RemoveImage filters the stored list, dropping every entry equal to the
// given URL. Relative order of the remaining entries is preserved.
func (r *PhaseRepository) RemoveImage(phaseID uuid.UUID, url string) ([]string, error) {
	ctx := context.Background()

	query := `UPDATE phases SET images = array_remove(images, $2), updated_at = NOW() WHERE id = $1 RETURNING images`

	var images []string
	if err := r.pool.QueryRow(ctx, query, phaseID, url).Scan(&images); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotOwned
		}
		return nil, translateError(err)
	}
	return images, nil
}

// DeleteCascade removes a phase and its daily logs, logs first, in one
// transaction. Returns the number of daily logs removed.
func (r *PhaseRepository) DeleteCascade(projectID, phaseID uuid.UUID) (int64, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, translateError(err)
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `DELETE FROM daily_logs WHERE phase_id = $1`, phaseID)
	if err != nil {
		return 0, translateError(err)
	}
	logsDeleted := ct.RowsAffected()

	ct, err = tx.Exec(ctx, `DELETE FROM phases WHERE id = $1 AND project_id = $2`, phaseID, projectID)
	if err != nil {
		return 0, translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return 0, errors.New("phase not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, translateError(err)
	}

	return logsDeleted, nil
}
