package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunRetrain_Execute(t *testing.T) {
	params := domain.DefaultHyperparameters()
	result := domain.TrainingResult{
		BestK: 4,
		BIC:   -123.4,
		Assignments: []domain.ZoneAssignment{
			{ZoneID: "zone-a", RiskLevel: 0},
			{ZoneID: "zone-b", RiskLevel: 3},
		},
	}

	logCreator := mocks.NewMockRetrainLogCreator(t)
	logFinalizer := mocks.NewMockRetrainLogFinalizer(t)
	trainer := mocks.NewMockTrainer(t)
	zoneWriter := mocks.NewMockZoneRiskWriter(t)

	var createdID string
	logCreator.EXPECT().
		CreateRetrainLog(mock.Anything, mock.Anything).
		Return(nil).
		Run(func(_ context.Context, entry domain.RetrainLog) {
			createdID = entry.ID
			require.NotEmpty(t, entry.ID)
			require.False(t, entry.StartedAt.IsZero())
			require.Equal(t, params, entry.Params)
			require.Nil(t, entry.Success)
		})

	trainer.EXPECT().
		Train(mock.Anything, params).
		Return(result, nil)

	zoneWriter.EXPECT().
		UpsertZoneRiskLevels(mock.Anything, result.Assignments).
		Return(nil)

	logFinalizer.EXPECT().
		FinalizeRetrainLog(mock.Anything, mock.Anything, mock.Anything, true, "").
		Return(nil).
		Run(func(_ context.Context, id string, finishedAt time.Time, _ bool, _ string) {
			require.Equal(t, createdID, id)
			require.False(t, finishedAt.IsZero())
		})

	cmd := NewRunRetrain(logCreator, logFinalizer, trainer, zoneWriter)

	resp, err := cmd.Execute(testContext(), RunRetrainRequest{
		Params:    params,
		AvgRating: 1.8,
		LowCount:  6,
	})
	require.NoError(t, err)
	require.Equal(t, createdID, resp.LogID)
	require.Equal(t, 4, resp.BestK)
	require.Equal(t, 2, resp.ZonesUpdated)
}

func TestRunRetrain_Execute_TrainerFailureFinalizedAsFailed(t *testing.T) {
	params := domain.DefaultHyperparameters()

	logCreator := mocks.NewMockRetrainLogCreator(t)
	logFinalizer := mocks.NewMockRetrainLogFinalizer(t)
	trainer := mocks.NewMockTrainer(t)
	zoneWriter := mocks.NewMockZoneRiskWriter(t)

	logCreator.EXPECT().
		CreateRetrainLog(mock.Anything, mock.Anything).
		Return(nil)

	trainer.EXPECT().
		Train(mock.Anything, params).
		Return(domain.TrainingResult{}, errors.New("convergence failure"))

	logFinalizer.EXPECT().
		FinalizeRetrainLog(mock.Anything, mock.Anything, mock.Anything, false, "convergence failure").
		Return(nil)

	cmd := NewRunRetrain(logCreator, logFinalizer, trainer, zoneWriter)

	_, err := cmd.Execute(testContext(), RunRetrainRequest{Params: params})
	require.Error(t, err)
	require.Contains(t, err.Error(), "running training")
}

func TestRunRetrain_Execute_ZoneWriteFailureFinalizedAsFailed(t *testing.T) {
	params := domain.DefaultHyperparameters()
	result := domain.TrainingResult{
		BestK:       3,
		Assignments: []domain.ZoneAssignment{{ZoneID: "zone-a", RiskLevel: 1}},
	}

	logCreator := mocks.NewMockRetrainLogCreator(t)
	logFinalizer := mocks.NewMockRetrainLogFinalizer(t)
	trainer := mocks.NewMockTrainer(t)
	zoneWriter := mocks.NewMockZoneRiskWriter(t)

	logCreator.EXPECT().
		CreateRetrainLog(mock.Anything, mock.Anything).
		Return(nil)

	trainer.EXPECT().
		Train(mock.Anything, params).
		Return(result, nil)

	zoneWriter.EXPECT().
		UpsertZoneRiskLevels(mock.Anything, result.Assignments).
		Return(errors.New("db error"))

	logFinalizer.EXPECT().
		FinalizeRetrainLog(mock.Anything, mock.Anything, mock.Anything, false, "db error").
		Return(nil)

	cmd := NewRunRetrain(logCreator, logFinalizer, trainer, zoneWriter)

	_, err := cmd.Execute(testContext(), RunRetrainRequest{Params: params})
	require.Error(t, err)
	require.Contains(t, err.Error(), "applying zone risk levels")
}

func TestRunRetrain_Execute_CreateLogError(t *testing.T) {
	logCreator := mocks.NewMockRetrainLogCreator(t)
	logFinalizer := mocks.NewMockRetrainLogFinalizer(t)
	trainer := mocks.NewMockTrainer(t)
	zoneWriter := mocks.NewMockZoneRiskWriter(t)

	logCreator.EXPECT().
		CreateRetrainLog(mock.Anything, mock.Anything).
		Return(errors.New("db error"))

	cmd := NewRunRetrain(logCreator, logFinalizer, trainer, zoneWriter)

	_, err := cmd.Execute(testContext(), RunRetrainRequest{Params: domain.DefaultHyperparameters()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "creating retrain log entry")
}
