package service

import (
	"context"
	"fmt"

	"github.com/mwhite/chronoassist/internal/repository"
)

type notesService struct {
	notes repository.NotesRepo
}

func NewNotesService(notes repository.NotesRepo) NotesService {
	return &notesService{notes: notes}
}

func (s *notesService) GetMainNotes(ctx context.Context, userID string) (string, error) {
	text, err := s.notes.GetMainNotes(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading notes: %w", err)
	}
	return text, nil
}

func (s *notesService) SaveMainNotes(ctx context.Context, userID, text string) error {
	if err := s.notes.SaveMainNotes(ctx, userID, text); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	return nil
}

func (s *notesService) GetShorthand(ctx context.Context, userID string) (string, error) {
	text, err := s.notes.GetShorthand(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading shorthand: %w", err)
	}
	return text, nil
}

func (s *notesService) SaveShorthand(ctx context.Context, userID, text string) error {
	if err := s.notes.SaveShorthand(ctx, userID, text); err != nil {
		return fmt.Errorf("saving shorthand: %w", err)
	}
	return nil
}
