package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "lingorelay/internal/errors"
	"lingorelay/internal/model"
	"lingorelay/internal/repository"
)

// historyListLimit caps how many records a single list call returns.
const historyListLimit = 100

// HistoryService handles per-user translation history. Every operation takes
// the owner resolved by the auth middleware; there is no other trust source.
type HistoryService interface {
	Save(ctx context.Context, owner, original, translated, fromLang, toLang string) (*model.TranslationRecord, error)
	List(ctx context.Context, owner string) ([]model.TranslationRecord, error)
	Clear(ctx context.Context, owner string) (int64, error)
	Delete(ctx context.Context, owner, recordID string) error
}

type historyService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(historyRepo repository.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

// Save persists a new translation record for the owner.
func (s *historyService) Save(ctx context.Context, owner, original, translated, fromLang, toLang string) (*model.TranslationRecord, error) {
	if original == "" || translated == "" {
		return nil, apperrors.ErrEmptyText
	}

	record := &model.TranslationRecord{
		OwnerEmail: owner,
		Original:   original,
		Translated: translated,
		FromLang:   fromLang,
		ToLang:     toLang,
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the owner's most recent records, newest first.
func (s *historyService) List(ctx context.Context, owner string) ([]model.TranslationRecord, error) {
	records, err := s.historyRepo.ListByOwner(ctx, owner, historyListLimit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.TranslationRecord{}
	}
	return records, nil
}

// Clear removes all records owned by owner and returns how many were removed.
// Zero removals is a success, not an error.
func (s *historyService) Clear(ctx context.Context, owner string) (int64, error) {
	return s.historyRepo.DeleteAllByOwner(ctx, owner)
}

// Delete removes a single record if it exists and belongs to owner. An
// unparseable id behaves like an unknown one.
func (s *historyService) Delete(ctx context.Context, owner, recordID string) error {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return apperrors.ErrHistoryNotFound
	}
	return s.historyRepo.DeleteByIDAndOwner(ctx, id, owner)
}
