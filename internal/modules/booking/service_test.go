package booking

import (
	"context"
	"testing"

	"venuehub/internal/availability"
	"venuehub/internal/domain"
	"venuehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	if res != nil {
		res.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]repository.UserReservationRow, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]repository.UserReservationRow), args.Error(1)
}

func (m *MockBookingRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockBookingRepository) GetVenueOwnerForReservation(ctx context.Context, reservationID int64) (int64, string, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, reservationID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, reservationID int64, reason string) error {
	args := m.Called(ctx, reservationID, reason)
	return args.Error(0)
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateBooking(ctx context.Context, req availability.BookingRequest) (*availability.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.Quote), args.Error(1)
}

type MockVenueReader struct {
	mock.Mock
}

func (m *MockVenueReader) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCreated(venueID int64, res *domain.Reservation) {
	m.Called(venueID, res)
}

func (m *MockNotifier) BookingCancelled(venueID int64, res *domain.Reservation) {
	m.Called(venueID, res)
}

func TestService_Create_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	validator := new(MockValidator)
	notifs := new(MockNotifier)

	validator.On("ValidateBooking", mock.Anything, mock.Anything).Return(&availability.Quote{
		StartTime:  "14:00",
		EndTime:    "16:00",
		TotalPrice: 30000,
		Status:     domain.ReservationPending,
	}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("BookingCreated", int64(7), mock.Anything).Return()

	service := NewService(bookings, validator, new(MockVenueReader), notifs)
	res, err := service.Create(context.Background(), 2, CreateBookingRequest{
		VenueID:     7,
		Date:        "2026-10-01",
		BookingType: "hourly",
		StartTime:   "14:00",
		EndTime:     "16:00",
		Guests:      40,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.VenueID)
	assert.Equal(t, int64(2), res.UserID)
	assert.Equal(t, 30000.0, res.TotalPrice)
	assert.Equal(t, domain.ReservationPending, res.Status)
	assert.NotEmpty(t, res.Reference)
	notifs.AssertExpectations(t)
}

func TestService_Create_ValidationErrorPassesThrough(t *testing.T) {
	validator := new(MockValidator)
	validator.On("ValidateBooking", mock.Anything, mock.Anything).
		Return(nil, availability.ErrSlotTaken)

	service := NewService(new(MockBookingRepository), validator, new(MockVenueReader), nil)
	_, err := service.Create(context.Background(), 2, CreateBookingRequest{
		VenueID:     7,
		Date:        "2026-10-01",
		BookingType: "hourly",
		StartTime:   "14:00",
		EndTime:     "16:00",
		Guests:      40,
	})
	assert.ErrorIs(t, err, availability.ErrSlotTaken)
}

func TestService_Create_DuplicateInsertBecomesSlotConflict(t *testing.T) {
	bookings := new(MockBookingRepository)
	validator := new(MockValidator)

	validator.On("ValidateBooking", mock.Anything, mock.Anything).Return(&availability.Quote{
		StartTime: "14:00",
		EndTime:   "16:00",
		Status:    domain.ReservationPending,
	}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateSlot)

	service := NewService(bookings, validator, new(MockVenueReader), nil)
	_, err := service.Create(context.Background(), 2, CreateBookingRequest{
		VenueID:     7,
		Date:        "2026-10-01",
		BookingType: "hourly",
		StartTime:   "14:00",
		EndTime:     "16:00",
		Guests:      40,
	})
	assert.ErrorIs(t, err, availability.ErrSlotConflict)
}

func TestService_Confirm_OwnerOnly(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetVenueOwnerForReservation", mock.Anything, int64(5)).
		Return(int64(1), "pending", nil)

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), nil)
	_, err := service.Confirm(context.Background(), 5, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Confirm_OnlyFromPending(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetVenueOwnerForReservation", mock.Anything, int64(5)).
		Return(int64(1), "confirmed", nil)

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), nil)
	_, err := service.Confirm(context.Background(), 5, 1)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Confirm_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetVenueOwnerForReservation", mock.Anything, int64(5)).
		Return(int64(1), "pending", nil)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationConfirmed).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:     5,
		Status: domain.ReservationConfirmed,
	}, nil)

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), nil)
	res, err := service.Confirm(context.Background(), 5, 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, res.Status)
}

func TestService_Confirm_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetVenueOwnerForReservation", mock.Anything, int64(404)).
		Return(int64(0), "", nil)

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), nil)
	_, err := service.Confirm(context.Background(), 404, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Cancel_ReasonRequired(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockValidator), new(MockVenueReader), nil)
	_, err := service.Cancel(context.Background(), 5, 2, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Cancel_ByBookingUser(t *testing.T) {
	bookings := new(MockBookingRepository)
	notifs := new(MockNotifier)

	res := &domain.Reservation{ID: 5, VenueID: 7, UserID: 2, Status: domain.ReservationConfirmed}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(res, nil)
	bookings.On("CancelWithReason", mock.Anything, int64(5), "change of plans").Return(nil)
	notifs.On("BookingCancelled", int64(7), mock.Anything).Return()

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), notifs)
	_, err := service.Cancel(context.Background(), 5, 2, "change of plans")

	assert.NoError(t, err)
	notifs.AssertExpectations(t)
}

func TestService_Cancel_StrangerForbidden(t *testing.T) {
	bookings := new(MockBookingRepository)
	res := &domain.Reservation{ID: 5, VenueID: 7, UserID: 2, Status: domain.ReservationPending}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(res, nil)
	bookings.On("GetVenueOwnerForReservation", mock.Anything, int64(5)).
		Return(int64(1), "pending", nil)

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), nil)
	_, err := service.Cancel(context.Background(), 5, 33, "nope")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	bookings := new(MockBookingRepository)
	res := &domain.Reservation{ID: 5, VenueID: 7, UserID: 2, Status: domain.ReservationCancelled}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(res, nil)

	service := NewService(bookings, new(MockValidator), new(MockVenueReader), nil)
	_, err := service.Cancel(context.Background(), 5, 2, "again")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_VenueBookings_OwnerOnly(t *testing.T) {
	venues := new(MockVenueReader)
	venues.On("GetByID", mock.Anything, int64(7)).Return(&domain.Venue{ID: 7, OwnerID: 1}, nil)

	service := NewService(new(MockBookingRepository), new(MockValidator), venues, nil)
	_, err := service.VenueBookings(context.Background(), 7, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_VenueBookings_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueReader)
	venues.On("GetByID", mock.Anything, int64(7)).Return(&domain.Venue{ID: 7, OwnerID: 1}, nil)
	bookings.On("ListByVenue", mock.Anything, int64(7)).Return([]domain.Reservation{
		{ID: 5, VenueID: 7},
	}, nil)

	service := NewService(bookings, new(MockValidator), venues, nil)
	rows, err := service.VenueBookings(context.Background(), 7, 1)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
