package command

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAPIToken_Execute(t *testing.T) {
	counter := mocks.NewMockUserAPITokenCounter(t)
	creator := mocks.NewMockAPITokenCreator(t)

	counter.EXPECT().
		CountUserActiveAPITokens(mock.Anything, "user1").
		Return(2, nil)

	var storedHash string
	creator.EXPECT().
		CreateAPIToken(mock.Anything, mock.Anything, "user1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(_ context.Context, id, _ string, tokenHash, tokenPrefix string, name *string, expiresAt *time.Time) {
			require.NotEmpty(t, id)
			require.Len(t, tokenPrefix, 8)
			require.Nil(t, name)
			require.Nil(t, expiresAt)
			storedHash = tokenHash
		})

	cmd := NewCreateAPIToken(counter, creator)

	resp, err := cmd.Execute(testContext(), CreateAPITokenRequest{UserID: "user1"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(resp.FullToken, APITokenPrefix))
	require.Equal(t, resp.FullToken[len(APITokenPrefix):][:8], resp.Prefix)

	// The stored hash must match the token we hand back, which is never stored.
	hash := sha256.Sum256([]byte(resp.FullToken))
	require.Equal(t, hex.EncodeToString(hash[:]), storedHash)
}

func TestCreateAPIToken_Execute_LimitExceeded(t *testing.T) {
	counter := mocks.NewMockUserAPITokenCounter(t)
	creator := mocks.NewMockAPITokenCreator(t)

	counter.EXPECT().
		CountUserActiveAPITokens(mock.Anything, "user1").
		Return(int64(MaxAPITokensPerUser), nil)

	cmd := NewCreateAPIToken(counter, creator)

	_, err := cmd.Execute(testContext(), CreateAPITokenRequest{UserID: "user1"})
	require.ErrorIs(t, err, ErrTokenLimitExceeded)
}

func TestCreateAPIToken_Execute_CountError(t *testing.T) {
	counter := mocks.NewMockUserAPITokenCounter(t)
	creator := mocks.NewMockAPITokenCreator(t)

	counter.EXPECT().
		CountUserActiveAPITokens(mock.Anything, "user1").
		Return(0, errors.New("db error"))

	cmd := NewCreateAPIToken(counter, creator)

	_, err := cmd.Execute(testContext(), CreateAPITokenRequest{UserID: "user1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "counting user tokens")
}
