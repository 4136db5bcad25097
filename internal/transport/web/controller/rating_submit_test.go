package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/command"
	cmdmocks "github.com/safezone-pe/safezone-backend/internal/command/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

type kickRecorder struct {
	kicks int
}

func (k *kickRecorder) Kick() { k.kicks++ }

func TestRatingSubmit_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		body       string
		submitResp command.SubmitRatingResponse
		submitErr  error
		skipSubmit bool
		wantStatus int
		wantKicks  int
	}{
		{
			name: "valid_rating",
			body: `{"stars": 1, "comment": "poco seguro"}`,
			submitResp: command.SubmitRatingResponse{
				RatingID:  "rating1",
				CreatedAt: testTime,
			},
			wantStatus: http.StatusCreated,
			wantKicks:  1,
		},
		{
			name:       "invalid_stars",
			body:       `{"stars": 9}`,
			submitErr:  command.ErrInvalidStars,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "comment_too_long",
			body:       `{"stars": 3, "comment": "` + strings.Repeat("a", 300) + `"}`,
			submitErr:  command.ErrCommentTooLong,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_body",
			body:       `{`,
			skipSubmit: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store_error",
			body:       `{"stars": 2}`,
			submitErr:  errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submitCmd := cmdmocks.NewMockCommand[command.SubmitRatingRequest, command.SubmitRatingResponse](t)
			kicker := &kickRecorder{}

			if !tc.skipSubmit {
				submitCmd.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(tc.submitResp, tc.submitErr)
			}

			ctrl := RatingSubmit{
				SubmitCmd: submitCmd,
				Worker:    kicker,
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/ratings", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantKicks, kicker.kicks)

			if tc.wantStatus == http.StatusCreated {
				var resp RatingSubmitResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.submitResp.RatingID, resp.ID)
				assert.Equal(t, tc.submitResp.CreatedAt, resp.CreatedAt)
			}
		})
	}
}
