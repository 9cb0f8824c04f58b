package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"constructax/internal/models"
)

type MaterialLogRepository struct {
	pool *pgxpool.Pool
}

func NewMaterialLogRepository(pool *pgxpool.Pool) *MaterialLogRepository {
	return &MaterialLogRepository{pool: pool}
}

const materialLogColumns = `id, project_id, material, amount, quantity, date, payment_method, payment_done, created_at`

func scanMaterialLog(row pgx.Row) (*models.MaterialLog, error) {
	var l models.MaterialLog
	err := row.Scan(
		&l.ID,
		&l.ProjectID,
		&l.Material,
		&l.Amount,
		&l.Quantity,
		&l.Date,
		&l.PaymentMethod,
		&l.PaymentDone,
		&l.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *MaterialLogRepository) Create(log *models.MaterialLog) error {
	ctx := context.Background()

	log.Prepare()

	query := `
		INSERT INTO material_logs (id, project_id, material, amount, quantity, date, payment_method, payment_done, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.ProjectID,
		log.Material,
		log.Amount,
		log.Quantity,
		log.Date,
		log.PaymentMethod,
		log.PaymentDone,
	)

	return translateError(err)
}

func (r *MaterialLogRepository) GetByID(projectID, logID uuid.UUID) (*models.MaterialLog, error) {
	ctx := context.Background()

	query := `SELECT ` + materialLogColumns + ` FROM material_logs WHERE id = $1 AND project_id = $2`

	log, err := scanMaterialLog(r.pool.QueryRow(ctx, query, logID, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return log, nil
}

func (r *MaterialLogRepository) GetByProjectID(projectID uuid.UUID) ([]models.MaterialLog, error) {
	ctx := context.Background()

	query := `SELECT ` + materialLogColumns + ` FROM material_logs WHERE project_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var logs []models.MaterialLog
	for rows.Next() {
		log, err := scanMaterialLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}

	return logs, rows.Err()
}

func (r *MaterialLogRepository) Update(log *models.MaterialLog) error {
	ctx := context.Background()

	query := `
		UPDATE material_logs SET
			material = $2, amount = $3, quantity = $4, date = $5,
			payment_method = $6, payment_done = $7
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.Material,
		log.Amount,
		log.Quantity,
		log.Date,
		log.PaymentMethod,
		log.PaymentDone,
	)

	return translateError(err)
}

func (r *MaterialLogRepository) Delete(projectID, logID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM material_logs WHERE id = $1 AND project_id = $2`
	ct, err := r.pool.Exec(ctx, query, logID, projectID)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return errors.New("material log not found")
	}
	return nil
}
