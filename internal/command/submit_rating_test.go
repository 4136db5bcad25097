package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRating_Execute(t *testing.T) {
	cases := []struct {
		name        string
		stars       int
		comment     string
		wantAddCall bool
		wantErr     error
	}{
		{
			name:        "valid_rating",
			stars:       4,
			comment:     "se siente seguro de dia",
			wantAddCall: true,
		},
		{
			name:        "zero_stars_allowed",
			stars:       0,
			wantAddCall: true,
		},
		{
			name:    "negative_stars_rejected",
			stars:   -1,
			wantErr: ErrInvalidStars,
		},
		{
			name:    "six_stars_rejected",
			stars:   6,
			wantErr: ErrInvalidStars,
		},
		{
			name:    "comment_too_long",
			stars:   3,
			comment: strings.Repeat("a", MaxCommentLength+1),
			wantErr: ErrCommentTooLong,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adder := mocks.NewMockRatingAdder(t)

			if tc.wantAddCall {
				adder.EXPECT().
					AddRating(mock.Anything, mock.Anything).
					Return(nil).
					Run(func(_ context.Context, rating domain.Rating) {
						require.NotEmpty(t, rating.ID)
						require.Equal(t, tc.stars, rating.Stars)
						require.Equal(t, tc.comment, rating.Comment)
						require.False(t, rating.CreatedAt.IsZero())
					})
			}

			cmd := NewSubmitRating(adder)

			resp, err := cmd.Execute(testContext(), SubmitRatingRequest{
				Stars:   tc.stars,
				Comment: tc.comment,
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, resp.RatingID)
			require.False(t, resp.CreatedAt.IsZero())
		})
	}
}

func TestSubmitRating_Execute_StoreError(t *testing.T) {
	adder := mocks.NewMockRatingAdder(t)

	adder.EXPECT().
		AddRating(mock.Anything, mock.Anything).
		Return(errors.New("db error"))

	cmd := NewSubmitRating(adder)

	_, err := cmd.Execute(testContext(), SubmitRatingRequest{Stars: 2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "storing rating")
}
