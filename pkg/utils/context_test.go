package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContextRoundTrip(t *testing.T) {
	userID := uuid.New()
	ctx := SetUserContext(context.Background(), userID)

	got, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestGetUserIDFromEmptyContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestTokenContextRoundTrip(t *testing.T) {
	ctx := SetTokenContext(context.Background(), "abc-token")

	token, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc-token", token)

	_, ok = GetTokenFromContext(context.Background())
	assert.False(t, ok)
}
