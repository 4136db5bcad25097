package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safezone-pe/safezone-backend/internal/command"
	cmdmocks "github.com/safezone-pe/safezone-backend/internal/command/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetrainTrigger_ServeHTTP(t *testing.T) {
	firedParams := domain.DecideHyperparameters(1.5, 6)

	cases := []struct {
		name        string
		decision    command.RetrainDecision
		evaluateErr error
		wantStatus  int
		wantKicks   int
	}{
		{
			name: "fires",
			decision: command.RetrainDecision{
				Fire:      true,
				LowCount:  6,
				AvgRating: 1.5,
				Params:    firedParams,
			},
			wantStatus: http.StatusAccepted,
			wantKicks:  1,
		},
		{
			name:       "does_not_fire",
			decision:   command.RetrainDecision{LowCount: 3},
			wantStatus: http.StatusOK,
		},
		{
			name:        "evaluation_error",
			evaluateErr: errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			evaluateCmd := cmdmocks.NewMockCommand[command.EvaluateRetrainTriggerRequest, command.RetrainDecision](t)
			kicker := &kickRecorder{}

			evaluateCmd.EXPECT().
				Execute(mock.Anything, command.EvaluateRetrainTriggerRequest{}).
				Return(tc.decision, tc.evaluateErr)

			ctrl := RetrainTrigger{
				EvaluateCmd: evaluateCmd,
				Worker:      kicker,
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/retrains", nil)
			req = testContextWithUserID("user456")(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantKicks, kicker.kicks)

			if tc.evaluateErr == nil {
				var resp RetrainTriggerResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.decision.Fire, resp.Fired)
				assert.Equal(t, tc.decision.LowCount, resp.LowCount)
				if tc.decision.Fire {
					require.NotNil(t, resp.Params)
					assert.Equal(t, firedParams, *resp.Params)
				}
			}
		})
	}
}
