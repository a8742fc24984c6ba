package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/staffhub-dev/staffhub/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatsService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockStatsReader(ctrl)
	svc := services.NewStatsService(mockReader)

	t.Run("success", func(t *testing.T) {
		want := &models.Stats{Users: 3, Companies: 2, Candidates: 5, AvailableCandidates: 4}
		mockReader.EXPECT().GetCounts(gomock.Any()).Return(want, nil)

		got, err := svc.Stats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetCounts(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.Stats(context.Background())
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}
