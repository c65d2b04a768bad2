package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
)

func TestDashboard_Success(t *testing.T) {
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rows := []models.DashboardRow{{"client": "alice", "amount": 199.50}}
	mockRepo.EXPECT().FetchDashboard(gomock.Any(), "alice").Return(rows, nil)

	data, err := uc.Dashboard(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, data, 1)
	assert.Equal(t, "alice", data[0]["client"])
}

func TestDashboard_NoIdentity(t *testing.T) {
	uc, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.Dashboard(context.Background(), "")
	assert.ErrorIs(t, err, accounts.ErrSessionRequired)
}

func TestDashboard_EmptyIsNotRetried(t *testing.T) {
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	// Exactly one fetch: an empty dashboard is an answer, not a fault
	mockRepo.EXPECT().
		FetchDashboard(gomock.Any(), "alice").
		Return(nil, accounts.ErrNoDashboardData).
		Times(1)

	_, err := uc.Dashboard(context.Background(), "alice")
	assert.ErrorIs(t, err, accounts.ErrNoDashboardData)
}

func TestDashboard_TransientFailureRetried(t *testing.T) {
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	rows := []models.DashboardRow{{"client": "alice"}}
	gomock.InOrder(
		mockRepo.EXPECT().FetchDashboard(gomock.Any(), "alice").Return(nil, assert.AnError),
		mockRepo.EXPECT().FetchDashboard(gomock.Any(), "alice").Return(rows, nil),
	)

	data, err := uc.Dashboard(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, data, 1)
}

func TestDashboard_RetryBudgetExhausted(t *testing.T) {
	uc, mockRepo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	// MaxAttempts is 2 in the test config
	mockRepo.EXPECT().
		FetchDashboard(gomock.Any(), "alice").
		Return(nil, assert.AnError).
		Times(2)

	_, err := uc.Dashboard(context.Background(), "alice")
	assert.ErrorIs(t, err, accounts.ErrDashboardUnavailable)
}
