package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"CT-MUSICAL/internal/models"
)

// RecordService stores the generation history. A nil database disables it.
type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// Enabled reports whether a database is attached.
func (s *RecordService) Enabled() bool {
	return s != nil && s.db != nil
}

func (s *RecordService) Create(ctx context.Context, record *models.ContractRecord) error {
	if !s.Enabled() {
		return ErrDatabaseDisabled
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save contract record: %w", err)
	}
	return nil
}

func (s *RecordService) Get(ctx context.Context, id string) (*models.ContractRecord, error) {
	if !s.Enabled() {
		return nil, ErrDatabaseDisabled
	}

	var record models.ContractRecord
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch contract record: %w", err)
	}
	return &record, nil
}

// List returns records newest first. A non-empty artist filters by a
// substring match.
func (s *RecordService) List(ctx context.Context, artist string, limit, offset int) ([]models.ContractRecord, int64, error) {
	if !s.Enabled() {
		return nil, 0, ErrDatabaseDisabled
	}

	var records []models.ContractRecord
	var total int64

	query := s.db.WithContext(ctx).Model(&models.ContractRecord{})
	if artist != "" {
		query = query.Where("artist LIKE ?", "%"+artist+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contract records: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contract records: %w", err)
	}

	return records, total, nil
}

