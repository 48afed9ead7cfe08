package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"smart-highway/internal/data/entity"
	"smart-highway/internal/data/repository"
	"smart-highway/internal/dto/request"
	"smart-highway/internal/fare"
	"smart-highway/internal/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePlaceRepo serves a fixed catalog.
type fakePlaceRepo struct {
	places map[uuid.UUID]*entity.Place
}

func (f *fakePlaceRepo) Create(ctx context.Context, place *entity.Place) error {
	f.places[place.ID] = place
	return nil
}

func (f *fakePlaceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	return f.places[id], nil
}

func (f *fakePlaceRepo) Update(ctx context.Context, place *entity.Place) error { return nil }
func (f *fakePlaceRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (f *fakePlaceRepo) Search(ctx context.Context, q search.ComposedQuery, limit, offset int) ([]*entity.Place, error) {
	return nil, nil
}
func (f *fakePlaceRepo) CountSearch(ctx context.Context, q search.ComposedQuery) (int64, error) {
	return 0, nil
}

// fakeBookingRepo honors the guarded-cancel contract: the status check and
// the write happen under one lock.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) CancelIfCancellable(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok || !booking.Status.CanCancel() {
		return false, nil
	}
	booking.Status = entity.BookingStatusCancelled
	return true, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok || !booking.Status.CanCancel() {
		return fmt.Errorf("booking %s cannot transition to %s", id.String(), string(status))
	}
	booking.Status = status
	return nil
}

// fakeTransportRepo implements the ledger contract: debit amount computed
// from the balance observed under the lock, refund atomic with the status
// flip.
type fakeTransportRepo struct {
	mu       sync.Mutex
	credits  map[uuid.UUID]float64
	bookings map[uuid.UUID]*entity.TransportBooking
}

func (f *fakeTransportRepo) CreateWithDebit(ctx context.Context, booking *entity.TransportBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	balance, ok := f.credits[booking.UserID]
	if !ok {
		return fmt.Errorf("user %s not found", booking.UserID.String())
	}
	booking.CreditsUsed = fare.CreditRedemption(balance, booking.TotalFare)
	copied := *booking
	f.bookings[booking.ID] = &copied
	f.credits[booking.UserID] = balance - booking.CreditsUsed
	return nil
}

func (f *fakeTransportRepo) CancelWithRefund(ctx context.Context, id, userID uuid.UUID) (*entity.TransportBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok || booking.UserID != userID {
		return nil, nil
	}
	if !booking.Status.CanCancel() {
		return nil, fmt.Errorf("booking cannot be cancelled from status %s", string(booking.Status))
	}
	booking.Status = entity.BookingStatusCancelled
	f.credits[booking.UserID] += booking.CreditsUsed
	copied := *booking
	return &copied, nil
}

func (f *fakeTransportRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeTransportRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.TransportBooking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeTransportRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeTransportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok || !booking.Status.CanCancel() {
		return fmt.Errorf("transport booking %s cannot transition to %s", id.String(), string(status))
	}
	booking.Status = status
	return nil
}

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*entity.Schedule
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	f.schedules[schedule.ID] = schedule
	return nil
}
func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	return f.schedules[id], nil
}
func (f *fakeScheduleRepo) FindActiveByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) Update(ctx context.Context, schedule *entity.Schedule) error {
	f.schedules[schedule.ID] = schedule
	return nil
}
func (f *fakeScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeRouteRepo struct {
	routes map[uuid.UUID]*entity.Route
}

func (f *fakeRouteRepo) Create(ctx context.Context, route *entity.Route) error { return nil }
func (f *fakeRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	return f.routes[id], nil
}
func (f *fakeRouteRepo) FindActive(ctx context.Context, filter repository.RouteFilter) ([]*entity.Route, error) {
	return nil, nil
}
func (f *fakeRouteRepo) Update(ctx context.Context, route *entity.Route) error { return nil }
func (f *fakeRouteRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type bookingTestEnv struct {
	service    BookingService
	places     *fakePlaceRepo
	bookings   *fakeBookingRepo
	transport  *fakeTransportRepo
	schedules  *fakeScheduleRepo
	routes     *fakeRouteRepo
	userID     uuid.UUID
	placeID    uuid.UUID
	routeID    uuid.UUID
	scheduleID uuid.UUID
}

func newBookingTestEnv(t *testing.T, balance float64) *bookingTestEnv {
	t.Helper()

	env := &bookingTestEnv{
		places:     &fakePlaceRepo{places: map[uuid.UUID]*entity.Place{}},
		bookings:   &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		transport:  &fakeTransportRepo{credits: map[uuid.UUID]float64{}, bookings: map[uuid.UUID]*entity.TransportBooking{}},
		schedules:  &fakeScheduleRepo{schedules: map[uuid.UUID]*entity.Schedule{}},
		routes:     &fakeRouteRepo{routes: map[uuid.UUID]*entity.Route{}},
		userID:     uuid.New(),
		placeID:    uuid.New(),
		routeID:    uuid.New(),
		scheduleID: uuid.New(),
	}

	env.transport.credits[env.userID] = balance

	env.places.places[env.placeID] = &entity.Place{
		Base:        entity.Base{ID: env.placeID},
		Name:        "Roadside Inn",
		PlaceType:   entity.PlaceTypeMotel,
		PriceRange:  entity.PriceTierLow,
		IsAvailable: true,
	}
	env.routes.routes[env.routeID] = &entity.Route{
		Base:     entity.Base{ID: env.routeID},
		Name:     "Downtown Express",
		Fare:     50,
		IsActive: true,
	}
	env.schedules.schedules[env.scheduleID] = &entity.Schedule{
		Base:     entity.Base{ID: env.scheduleID},
		RouteID:  env.routeID,
		IsActive: true,
	}

	repo := &repository.Repository{
		Place:            env.places,
		Booking:          env.bookings,
		TransportBooking: env.transport,
		Schedule:         env.schedules,
		Route:            env.routes,
	}
	env.service = NewBookingService(repo, zap.NewNop())
	return env
}

func placeBookingRequest(placeID uuid.UUID) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		PlaceID:    placeID.String(),
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-03",
		TotalPrice: 120,
	}
}

func TestCreateBooking(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	ctx := context.Background()

	booking, err := env.service.CreateBooking(ctx, env.userID.String(), placeBookingRequest(env.placeID))
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, 120.0, booking.TotalPrice)
	assert.Equal(t, "Roadside Inn", booking.PlaceName)
	assert.Len(t, env.bookings.bookings, 1)
}

func TestCreateBookingUnavailablePlace(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	env.places.places[env.placeID].IsAvailable = false

	_, err := env.service.CreateBooking(context.Background(), env.userID.String(), placeBookingRequest(env.placeID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Empty(t, env.bookings.bookings)
}

func TestCreateBookingUnknownPlace(t *testing.T) {
	env := newBookingTestEnv(t, 0)

	_, err := env.service.CreateBooking(context.Background(), env.userID.String(), placeBookingRequest(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingCheckOutBeforeCheckIn(t *testing.T) {
	env := newBookingTestEnv(t, 0)

	req := placeBookingRequest(env.placeID)
	req.CheckIn = "2026-09-03"
	req.CheckOut = "2026-09-01"

	_, err := env.service.CreateBooking(context.Background(), env.userID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCancelBooking(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	ctx := context.Background()

	booking, err := env.service.CreateBooking(ctx, env.userID.String(), placeBookingRequest(env.placeID))
	require.NoError(t, err)

	cancelled, err := env.service.CancelBooking(ctx, env.userID.String(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	// Second cancel hits an absorbing state
	_, err = env.service.CancelBooking(ctx, env.userID.String(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be cancelled")
}

func TestCancelBookingNotOwned(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	ctx := context.Background()

	booking, err := env.service.CreateBooking(ctx, env.userID.String(), placeBookingRequest(env.placeID))
	require.NoError(t, err)

	// Someone else's booking is reported as missing, not forbidden
	_, err = env.service.CancelBooking(ctx, uuid.New().String(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	stored, _ := env.bookings.FindByID(ctx, uuid.MustParse(booking.ID))
	assert.Equal(t, entity.BookingStatusPending, stored.Status)
}

func TestCancelCompletedBooking(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	ctx := context.Background()

	booking, err := env.service.CreateBooking(ctx, env.userID.String(), placeBookingRequest(env.placeID))
	require.NoError(t, err)
	require.NoError(t, env.bookings.UpdateStatus(ctx, uuid.MustParse(booking.ID), entity.BookingStatusCompleted))

	_, err = env.service.CancelBooking(ctx, env.userID.String(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be cancelled")
}

func TestStatusUpdateRefusedOnAbsorbingStates(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	ctx := context.Background()

	booking, err := env.service.CreateBooking(ctx, env.userID.String(), placeBookingRequest(env.placeID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	// pending -> completed is a legal move
	require.NoError(t, env.bookings.UpdateStatus(ctx, id, entity.BookingStatusCompleted))

	// completed is absorbing; no mutator may leave it
	err = env.bookings.UpdateStatus(ctx, id, entity.BookingStatusPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")

	stored, _ := env.bookings.FindByID(ctx, id)
	assert.Equal(t, entity.BookingStatusCompleted, stored.Status)
}

func transportBookingRequest(scheduleID uuid.UUID, passengers int) *request.CreateTransportBookingRequest {
	return &request.CreateTransportBookingRequest{
		ScheduleID:    scheduleID.String(),
		BookingDate:   "2026-09-10",
		NumPassengers: passengers,
	}
}

func TestCreateTransportBookingDebitsBalanceCappedCredits(t *testing.T) {
	// fare 50 x 4 = 200, cap 20% = 40; balance 100 covers the cap
	env := newBookingTestEnv(t, 100)
	ctx := context.Background()

	booking, err := env.service.CreateTransportBooking(ctx, env.userID.String(), transportBookingRequest(env.scheduleID, 4))
	require.NoError(t, err)

	assert.Equal(t, 200.0, booking.TotalFare)
	assert.Equal(t, 40.0, booking.CreditsUsed)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, 60.0, env.transport.credits[env.userID])
}

func TestTransportBookingStartsPending(t *testing.T) {
	// Create is the transition into pending; confirmation happens later
	env := newBookingTestEnv(t, 0)

	booking, err := env.service.CreateTransportBooking(context.Background(), env.userID.String(), transportBookingRequest(env.scheduleID, 2))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
}

func TestCreateTransportBookingDebitsFullSmallBalance(t *testing.T) {
	// balance 10 is below the 40 cap, so the whole balance is consumed
	env := newBookingTestEnv(t, 10)
	ctx := context.Background()

	booking, err := env.service.CreateTransportBooking(ctx, env.userID.String(), transportBookingRequest(env.scheduleID, 4))
	require.NoError(t, err)

	assert.Equal(t, 10.0, booking.CreditsUsed)
	assert.Equal(t, 0.0, env.transport.credits[env.userID])
}

func TestCreateTransportBookingInactiveSchedule(t *testing.T) {
	env := newBookingTestEnv(t, 100)
	env.schedules.schedules[env.scheduleID].IsActive = false

	_, err := env.service.CreateTransportBooking(context.Background(), env.userID.String(), transportBookingRequest(env.scheduleID, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Equal(t, 100.0, env.transport.credits[env.userID])
}

func TestCreateTransportBookingInactiveRoute(t *testing.T) {
	env := newBookingTestEnv(t, 100)
	env.routes.routes[env.routeID].IsActive = false

	_, err := env.service.CreateTransportBooking(context.Background(), env.userID.String(), transportBookingRequest(env.scheduleID, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestCancelTransportBookingRefundsExactly(t *testing.T) {
	env := newBookingTestEnv(t, 100)
	ctx := context.Background()

	booking, err := env.service.CreateTransportBooking(ctx, env.userID.String(), transportBookingRequest(env.scheduleID, 4))
	require.NoError(t, err)
	require.Equal(t, 60.0, env.transport.credits[env.userID])

	cancelled, err := env.service.CancelTransportBooking(ctx, env.userID.String(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 100.0, env.transport.credits[env.userID])

	// Double cancel must not refund twice
	_, err = env.service.CancelTransportBooking(ctx, env.userID.String(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be cancelled")
	assert.Equal(t, 100.0, env.transport.credits[env.userID])
}

func TestCancelTransportBookingNotOwned(t *testing.T) {
	env := newBookingTestEnv(t, 100)
	ctx := context.Background()

	booking, err := env.service.CreateTransportBooking(ctx, env.userID.String(), transportBookingRequest(env.scheduleID, 4))
	require.NoError(t, err)

	_, err = env.service.CancelTransportBooking(ctx, uuid.New().String(), booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, 60.0, env.transport.credits[env.userID])
}

func TestConcurrentTransportBookingsNeverOverspend(t *testing.T) {
	// 5 concurrent bookings each eligible for a 40-credit debit against a
	// 50-credit balance: the joint debit may never exceed the balance.
	env := newBookingTestEnv(t, 50)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]float64, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			booking, err := env.service.CreateTransportBooking(ctx, env.userID.String(), transportBookingRequest(env.scheduleID, 4))
			if err == nil {
				results[i] = booking.CreditsUsed
			}
		}(i)
	}
	wg.Wait()

	var debited float64
	for _, used := range results {
		debited += used
	}

	assert.LessOrEqual(t, debited, 50.0)
	assert.GreaterOrEqual(t, env.transport.credits[env.userID], 0.0)
	assert.InDelta(t, 50.0-debited, env.transport.credits[env.userID], 1e-9)
}

func TestGetUserBookingsPagination(t *testing.T) {
	env := newBookingTestEnv(t, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := env.service.CreateBooking(ctx, env.userID.String(), placeBookingRequest(env.placeID))
		require.NoError(t, err)
	}

	page, err := env.service.GetUserBookings(ctx, env.userID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Len(t, page.Data, 3)

	for _, b := range page.Data {
		assert.Equal(t, entity.BookingStatusPending, b.Status)
		assert.NotEmpty(t, b.CheckIn)
	}
}
