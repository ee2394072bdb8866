package service

import (
	"context"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/store"
)

type notesService struct {
	notesRepository store.NotesRepository

	logger *logger.Logger
}

func NewNotesService(notesRepository store.NotesRepository, logger *logger.Logger) NotesService {
	return &notesService{
		notesRepository: notesRepository,
		logger:          logger,
	}
}

func (s *notesService) GetNotes(ctx context.Context, holidayID string) []string {
	return s.notesRepository.LoadNotes(ctx, holidayID)
}

func (s *notesService) SaveNotes(ctx context.Context, holidayID string, items []string, name, description string) error {
	return s.notesRepository.SaveNotes(ctx, holidayID, items, name, description)
}
