package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cardtracker.app/api/common/id"
	"cardtracker.app/api/common/logger"
	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/store"
)

// SettingsService stores opaque per-user preference objects.
type SettingsService interface {
	Save(ctx context.Context, username string, settings json.RawMessage) (*model.User, error)
	Get(ctx context.Context, username string) (json.RawMessage, error)
}

type settingsService struct {
	userStore store.UserStore
}

func NewSettingsService(userStore store.UserStore) SettingsService {
	return &settingsService{userStore: userStore}
}

func (s *settingsService) Save(ctx context.Context, username string, settings json.RawMessage) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "must not be empty"}
	}
	if !isJSONObject(settings) {
		return nil, &ValidationError{Field: "settings", Message: "must be a JSON object"}
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{Username: &username})

	user := &model.User{ID: id.New(), Username: username}
	if err := s.userStore.UpsertSettings(ctx, user, settings); err != nil {
		slog.ErrorContext(ctx, "failed to save user settings", "error", err)
		return nil, fmt.Errorf("saving settings: %w", err)
	}

	slog.InfoContext(ctx, "user settings saved", "user_id", user.ID)
	return user, nil
}

func (s *settingsService) Get(ctx context.Context, username string) (json.RawMessage, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		slog.ErrorContext(ctx, "failed to fetch user settings", "error", err, "username", username)
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if len(user.Settings) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return user.Settings, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
