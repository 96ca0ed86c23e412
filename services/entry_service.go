package services

import (
	"context"
	"strings"

	"booking-wizard/models"

	"go.uber.org/zap"
)

// EntryStore persists entries; *repositories.EntryRepository satisfies it.
type EntryStore interface {
	Create(ctx context.Context, textValue, email string) (models.Entry, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type EntryService struct {
	Store EntryStore
	Log   *zap.Logger
}

func NewEntryService(store EntryStore, log *zap.Logger) *EntryService {
	return &EntryService{Store: store, Log: log}
}

// SubmitEntry validates the trimmed name and email, then stores them.
// Validation failures are KindValidation; store failures are KindUnexpected.
func (s *EntryService) SubmitEntry(ctx context.Context, textValue, email string) (models.Entry, error) {
	textValue = strings.TrimSpace(textValue)
	email = strings.TrimSpace(email)

	if err := validateEntry(textValue, email); err != nil {
		return models.Entry{}, err
	}

	entry, err := s.Store.Create(ctx, textValue, email)
	if err != nil {
		return models.Entry{}, UnexpectedError(err)
	}

	s.Log.Debug("entry stored", zap.Uint("entry_id", entry.ID))
	return entry, nil
}
