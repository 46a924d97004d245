package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
)

func TestTokenPruneTask_Execute(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	longAgo := now.AddDate(0, 0, -10)
	yesterday := now.AddDate(0, 0, -1)

	tokens := mocks.NewTokenStore()
	tokens.Seed(
		&domain.MobileToken{ID: uuid.New(), StaffID: 1, Type: domain.TokenAccess, ExpiresAt: longAgo},
		&domain.MobileToken{ID: uuid.New(), StaffID: 1, Type: domain.TokenRefresh, ExpiresAt: now.AddDate(0, 0, 20), RevokedAt: &longAgo},
		&domain.MobileToken{ID: uuid.New(), StaffID: 1, Type: domain.TokenRefresh, ExpiresAt: now.AddDate(0, 0, 20), RevokedAt: &yesterday},
		&domain.MobileToken{ID: uuid.New(), StaffID: 1, Type: domain.TokenAccess, ExpiresAt: now.Add(time.Hour)},
	)

	task := NewTokenPruneTask(tokens, 7*24*time.Hour, setupTestLogger())
	task.now = func() time.Time { return now }

	require.NoError(t, task.Execute(context.Background()))
	assert.Equal(t, 2, tokens.Count())
	assert.Equal(t, TaskTypeTokenPrune, task.Type())
}

func TestTokenPruneTask_StoreError(t *testing.T) {
	tokens := mocks.NewTokenStore()
	tokens.Err = errors.New("connection reset")

	err := NewTokenPruneTask(tokens, time.Hour, nil).Execute(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prune tokens before")
	assert.ErrorIs(t, err, tokens.Err)
}
