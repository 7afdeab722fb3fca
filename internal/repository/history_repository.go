package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "lingorelay/internal/errors"
	"lingorelay/internal/model"
)

// HistoryRepository defines translation history persistence operations.
// Every query is scoped by owner; there is no unscoped read or delete.
type HistoryRepository interface {
	Create(ctx context.Context, record *model.TranslationRecord) error
	ListByOwner(ctx context.Context, owner string, limit int) ([]model.TranslationRecord, error)
	DeleteAllByOwner(ctx context.Context, owner string) (int64, error)
	DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, owner string) error
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository builds a GORM-backed repository.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, record *model.TranslationRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *historyRepository) ListByOwner(ctx context.Context, owner string, limit int) ([]model.TranslationRecord, error) {
	var records []model.TranslationRecord
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", owner).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *historyRepository) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("owner_email = ?", owner).
		Delete(&model.TranslationRecord{})
	return res.RowsAffected, res.Error
}

// DeleteByIDAndOwner deletes only when both id and owner match. A non-owner
// deleting an existing id affects zero rows and gets ErrHistoryNotFound, so
// record existence is never confirmed to a non-owner.
func (r *historyRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, owner string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_email = ?", id, owner).
		Delete(&model.TranslationRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrHistoryNotFound
	}
	return nil
}
