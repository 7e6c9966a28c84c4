package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plushealth/plushealth-server/internal/model"
)

var _ model.WeightStore = (*WeightRepository)(nil)

type WeightRepository struct {
	db *Connection
}

func NewWeightRepository(db *Connection) *WeightRepository {
	return &WeightRepository{
		db: db,
	}
}

func (r *WeightRepository) Create(ctx context.Context, record model.WeightRecord) (model.WeightRecord, error) {
	query := `INSERT INTO weight_records (id, user_id, weight, record_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, user_id, weight, record_date`

	var savedRecord model.WeightRecord
	err := r.db.QueryRow(ctx, query,
		record.ID, record.UserID, record.Weight, record.RecordDate,
	).Scan(&savedRecord.ID, &savedRecord.UserID, &savedRecord.Weight, &savedRecord.RecordDate)
	if err != nil {
		return model.WeightRecord{}, fmt.Errorf("failed to create weight record: %w", err)
	}

	return savedRecord, nil
}

// ListByUser returns records sorted by date ascending. Callers render a time
// series directly from the returned order.
func (r *WeightRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WeightRecord, error) {
	query := `SELECT id, user_id, weight, record_date
			  FROM weight_records WHERE user_id = $1
			  ORDER BY record_date ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight records: %w", err)
	}
	defer rows.Close()

	records := []model.WeightRecord{}
	for rows.Next() {
		var record model.WeightRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Weight, &record.RecordDate); err != nil {
			return nil, fmt.Errorf("failed to scan weight record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weight records: %w", err)
	}

	return records, nil
}
