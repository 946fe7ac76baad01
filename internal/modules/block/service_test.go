package block

import (
	"context"
	"testing"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.BlockedInterval, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlockedInterval), args.Error(1)
}

func (m *MockBlockRepository) Create(ctx context.Context, block *domain.BlockedInterval) error {
	args := m.Called(ctx, block)
	if block != nil {
		block.ID = 55 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBlockRepository) GetByID(ctx context.Context, id int64) (*domain.BlockedInterval, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlockedInterval), args.Error(1)
}

func (m *MockBlockRepository) Delete(ctx context.Context, venueID, blockID int64) error {
	args := m.Called(ctx, venueID, blockID)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) ListActiveByVenueDate(ctx context.Context, venueID int64, date string) ([]domain.Reservation, error) {
	args := m.Called(ctx, venueID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
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

func (m *MockNotifier) DateBlocked(venueID int64, date string) {
	m.Called(venueID, date)
}

func (m *MockNotifier) DateUnblocked(venueID int64, date string) {
	m.Called(venueID, date)
}

func ownedVenue() *domain.Venue {
	return &domain.Venue{ID: 7, OwnerID: 1}
}

func TestService_Create_FullDay(t *testing.T) {
	blocks := new(MockBlockRepository)
	bookings := new(MockBookingReader)
	venues := new(MockVenueReader)
	notifs := new(MockNotifier)

	venues.On("GetByID", mock.Anything, int64(7)).Return(ownedVenue(), nil)
	bookings.On("ListActiveByVenueDate", mock.Anything, int64(7), "2026-10-01").
		Return([]domain.Reservation{}, nil)
	blocks.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("DateBlocked", int64(7), "2026-10-01").Return()

	service := NewService(blocks, bookings, venues, notifs)
	b, err := service.Create(context.Background(), 7, 1, CreateBlockRequest{
		Date:      "2026-10-01",
		IsFullDay: true,
		StartTime: "10:00", // must be dropped for full-day blocks
		EndTime:   "12:00",
		Reason:    "maintenance",
	})

	assert.NoError(t, err)
	assert.True(t, b.IsFullDay)
	assert.Empty(t, b.StartTime)
	assert.Empty(t, b.EndTime)
	notifs.AssertExpectations(t)
}

func TestService_Create_PartialRequiresTimes(t *testing.T) {
	service := NewService(new(MockBlockRepository), new(MockBookingReader), new(MockVenueReader), nil)

	_, err := service.Create(context.Background(), 7, 1, CreateBlockRequest{
		Date:      "2026-10-01",
		IsFullDay: false,
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_BadDate(t *testing.T) {
	service := NewService(new(MockBlockRepository), new(MockBookingReader), new(MockVenueReader), nil)

	_, err := service.Create(context.Background(), 7, 1, CreateBlockRequest{
		Date:      "01.10.2026",
		IsFullDay: true,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_NonOwnerForbidden(t *testing.T) {
	venues := new(MockVenueReader)
	venues.On("GetByID", mock.Anything, int64(7)).Return(ownedVenue(), nil)

	service := NewService(new(MockBlockRepository), new(MockBookingReader), venues, nil)
	_, err := service.Create(context.Background(), 7, 2, CreateBlockRequest{
		Date:      "2026-10-01",
		IsFullDay: true,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_RefusedWhenDateHasBookings(t *testing.T) {
	bookings := new(MockBookingReader)
	venues := new(MockVenueReader)

	venues.On("GetByID", mock.Anything, int64(7)).Return(ownedVenue(), nil)
	bookings.On("ListActiveByVenueDate", mock.Anything, int64(7), "2026-10-01").
		Return([]domain.Reservation{
			{ID: 5, Status: domain.ReservationConfirmed},
		}, nil)

	service := NewService(new(MockBlockRepository), bookings, venues, nil)
	_, err := service.Create(context.Background(), 7, 1, CreateBlockRequest{
		Date:      "2026-10-01",
		IsFullDay: true,
	})
	assert.ErrorIs(t, err, ErrDateHasBookings)
}

func TestService_Delete_Success(t *testing.T) {
	blocks := new(MockBlockRepository)
	venues := new(MockVenueReader)
	notifs := new(MockNotifier)

	venues.On("GetByID", mock.Anything, int64(7)).Return(ownedVenue(), nil)
	blocks.On("GetByID", mock.Anything, int64(55)).Return(&domain.BlockedInterval{
		ID:      55,
		VenueID: 7,
		Date:    "2026-10-01",
	}, nil)
	blocks.On("Delete", mock.Anything, int64(7), int64(55)).Return(nil)
	notifs.On("DateUnblocked", int64(7), "2026-10-01").Return()

	service := NewService(blocks, new(MockBookingReader), venues, notifs)
	err := service.Delete(context.Background(), 7, 55, 1)

	assert.NoError(t, err)
	notifs.AssertExpectations(t)
}

func TestService_Delete_WrongVenueScope(t *testing.T) {
	blocks := new(MockBlockRepository)
	venues := new(MockVenueReader)

	venues.On("GetByID", mock.Anything, int64(7)).Return(ownedVenue(), nil)
	blocks.On("GetByID", mock.Anything, int64(55)).Return(&domain.BlockedInterval{
		ID:      55,
		VenueID: 8, // belongs to another venue
	}, nil)

	service := NewService(blocks, new(MockBookingReader), venues, nil)
	err := service.Delete(context.Background(), 7, 55, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_OwnerOnly(t *testing.T) {
	venues := new(MockVenueReader)
	venues.On("GetByID", mock.Anything, int64(7)).Return(ownedVenue(), nil)

	service := NewService(new(MockBlockRepository), new(MockBookingReader), venues, nil)
	_, err := service.List(context.Background(), 7, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}
