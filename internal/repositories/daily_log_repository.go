package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"constructax/internal/models"
)

type DailyLogRepository struct {
	pool *pgxpool.Pool
}

func NewDailyLogRepository(pool *pgxpool.Pool) *DailyLogRepository {
	return &DailyLogRepository{pool: pool}
}

const dailyLogColumns = `id, phase_id, date, today_log, tomorrow_needs, images, created_at, updated_at`

func scanDailyLog(row pgx.Row) (*models.DailyLog, error) {
	var d models.DailyLog
	err := row.Scan(
		&d.ID,
		&d.PhaseID,
		&d.Date,
		&d.TodayLog,
		&d.TomorrowNeeds,
		&d.Images,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DailyLogRepository) Create(log *models.DailyLog) error {
	ctx := context.Background()

	log.Prepare()

	query := `
		INSERT INTO daily_logs (id, phase_id, date, today_log, tomorrow_needs, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.PhaseID,
		log.Date,
		log.TodayLog,
		log.TomorrowNeeds,
		log.Images,
	)

	return translateError(err)
}

func (r *DailyLogRepository) GetByID(phaseID, logID uuid.UUID) (*models.DailyLog, error) {
	ctx := context.Background()

	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs WHERE id = $1 AND phase_id = $2`

	log, err := scanDailyLog(r.pool.QueryRow(ctx, query, logID, phaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateError(err)
	}

	return log, nil
}

func (r *DailyLogRepository) GetByPhaseID(phaseID uuid.UUID) ([]models.DailyLog, error) {
	ctx := context.Background()

	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs WHERE phase_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, phaseID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		log, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}

	return logs, rows.Err()
}

func (r *DailyLogRepository) Update(log *models.DailyLog) error {
	ctx := context.Background()

	query := `
		UPDATE daily_logs SET
			date = $2, today_log = $3, tomorrow_needs = $4, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.Date,
		log.TodayLog,
		log.TomorrowNeeds,
	)

	return translateError(err)
}

func (r *DailyLogRepository) Delete(phaseID, logID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM daily_logs WHERE id = $1 AND phase_id = $2`
	ct, err := r.pool.Exec(ctx, query, logID, phaseID)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return errors.New("daily log not found")
	}
	return nil
}

func (r *DailyLogRepository) AppendImages(logID uuid.UUID, urls []string) ([]string, error) {
	ctx := context.Background()

	query := `UPDATE daily_logs SET images = images || $2, updated_at = NOW() WHERE id = $1 RETURNING images`

	var images []string
	if err := r.pool.QueryRow(ctx, query, logID, urls).Scan(&images); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("daily log not found")
		}
		return nil, translateError(err)
	}
	return images, nil
}

func (r *DailyLogRepository) RemoveImage(logID uuid.UUID, url string) ([]string, error) {
	ctx := context.Background()

	query := `UPDATE daily_logs SET images = array_remove(images, $2), updated_at = NOW() WHERE id = $1 RETURNING images`

	var images []string
	if err := r.pool.QueryRow(ctx, query, logID, url).Scan(&images); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("daily log not found")
		}
		return nil, translateError(err)
	}
	return images, nil
}
