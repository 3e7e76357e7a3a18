// Package service implements site-settings management.
package service

import (
	"context"

	"monjoel_backend/internal/settings/repository"
	"monjoel_backend/internal/settings/transport"

	"github.com/google/uuid"
)

// publicCategories are the setting categories exposed without auth.
var publicCategories = []string{"contact", "general", "social"}

// Store is the persistence surface the service needs.
type Store interface {
	ListAll(ctx context.Context) ([]repository.Setting, error)
	ListByCategories(ctx context.Context, categories []string) ([]repository.Setting, error)
	UpdateValue(ctx context.Context, key, value string) error
	InsertMissing(ctx context.Context, setting repository.Setting) error
}

// Service provides business logic for site settings.
type Service struct {
	repo Store
}

// New creates a new settings service.
func New(repo Store) *Service {
	return &Service{repo: repo}
}

// GetAll returns every setting for the admin view.
func (s *Service) GetAll(ctx context.Context) ([]transport.SettingResponse, error) {
	settings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapSettings(settings), nil
}

// GetPublic returns the settings safe to expose to the public site.
func (s *Service) GetPublic(ctx context.Context) ([]transport.SettingResponse, error) {
	settings, err := s.repo.ListByCategories(ctx, publicCategories)
	if err != nil {
		return nil, err
	}
	return mapSettings(settings), nil
}

// BulkUpdate applies a batch of key/value updates. Unknown keys fail the
// whole batch.
func (s *Service) BulkUpdate(ctx context.Context, req transport.BulkUpdateRequest) error {
	for _, update := range req.Settings {
		if err := s.repo.UpdateValue(ctx, update.Key, update.Value); err != nil {
			return err
		}
	}
	return nil
}

// Initialize installs the default settings, keeping stored values for keys
// that already exist.
func (s *Service) Initialize(ctx context.Context) error {
	for _, setting := range DefaultSettings() {
		setting.ID = uuid.New()
		if err := s.repo.InsertMissing(ctx, setting); err != nil {
			return err
		}
	}
	return nil
}

func mapSettings(settings []repository.Setting) []transport.SettingResponse {
	responses := make([]transport.SettingResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, transport.SettingResponse{
			Key:         setting.Key,
			Value:       setting.Value,
			Label:       setting.Label,
			Description: setting.Description,
			Category:    setting.Category,
			Type:        setting.Type,
		})
	}
	return responses
}
