package usecase

import (
	"context"
	"testing"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/data/repository"
	"smart-highway/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleTestEnv(t *testing.T) (TransportService, *fakeScheduleRepo, uuid.UUID) {
	t.Helper()

	routeID := uuid.New()
	routes := &fakeRouteRepo{routes: map[uuid.UUID]*entity.Route{
		routeID: {
			Base:     entity.Base{ID: routeID},
			Name:     "Night Line",
			Fare:     30,
			IsActive: true,
		},
	}}
	schedules := &fakeScheduleRepo{schedules: map[uuid.UUID]*entity.Schedule{}}

	repo := &repository.Repository{Route: routes, Schedule: schedules}
	return NewTransportService(repo, zap.NewNop()), schedules, routeID
}

func TestCreateScheduleStoresTimeOfDay(t *testing.T) {
	service, schedules, routeID := newScheduleTestEnv(t)

	// An overnight leg arrives "before" it departs; both are times of day
	resp, err := service.CreateSchedule(context.Background(), &request.ScheduleRequest{
		RouteID:       routeID.String(),
		DepartureTime: "22:30",
		ArrivalTime:   "06:15",
		DaysOfWeek:    "1,2,3,4,5",
	})
	require.NoError(t, err)

	assert.Equal(t, "22:30", resp.DepartureTime)
	assert.Equal(t, "06:15", resp.ArrivalTime)

	stored := schedules.schedules[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored)
	assert.Equal(t, "22:30", stored.DepartureTime)
	assert.Equal(t, "06:15", stored.ArrivalTime)
}

func TestCreateScheduleRejectsNonTimeOfDayInput(t *testing.T) {
	service, _, routeID := newScheduleTestEnv(t)

	for _, departure := range []string{"2026-01-02T15:04:05Z", "25:99", "noon"} {
		_, err := service.CreateSchedule(context.Background(), &request.ScheduleRequest{
			RouteID:       routeID.String(),
			DepartureTime: departure,
			ArrivalTime:   "10:00",
			DaysOfWeek:    "6,7",
		})
		require.Error(t, err, departure)
		assert.Contains(t, err.Error(), "validation failed")
	}
}

func TestUpdateSchedulePatchesTimes(t *testing.T) {
	service, schedules, routeID := newScheduleTestEnv(t)

	resp, err := service.CreateSchedule(context.Background(), &request.ScheduleRequest{
		RouteID:       routeID.String(),
		DepartureTime: "08:00",
		ArrivalTime:   "09:30",
		DaysOfWeek:    "1",
	})
	require.NoError(t, err)

	arrival := "09:45"
	updated, err := service.UpdateSchedule(context.Background(), resp.ID, &request.ScheduleUpdateRequest{
		ArrivalTime: &arrival,
	})
	require.NoError(t, err)

	assert.Equal(t, "08:00", updated.DepartureTime)
	assert.Equal(t, "09:45", updated.ArrivalTime)
	assert.Equal(t, "09:45", schedules.schedules[uuid.MustParse(resp.ID)].ArrivalTime)
}
