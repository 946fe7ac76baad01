package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"venuehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateSlot is returned when an insert collides with the partial
// unique index over non-cancelled reservations, i.e. another booking for the
// exact same venue/date/time range won the race.
var ErrDuplicateSlot = errors.New("duplicate reservation slot")

const noDoubleBookingIndex = "idx_no_double_booking"

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

var activeStatuses = []string{
	string(domain.ReservationPending),
	string(domain.ReservationConfirmed),
}

func (r *BookingRepository) ListActiveByVenue(ctx context.Context, venueID int64) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Where("status IN ?", activeStatuses).
		Order("date, start_time").
		Find(&rows).Error
	return rows, err
}

func (r *BookingRepository) ListActiveByVenueDate(ctx context.Context, venueID int64, date string) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND date = ?", venueID, date).
		Where("status IN ?", activeStatuses).
		Order("start_time").
		Find(&rows).Error
	return rows, err
}

func (r *BookingRepository) Create(ctx context.Context, res *domain.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if isDuplicateSlot(err) {
			return ErrDuplicateSlot
		}
		return err
	}
	return nil
}

// isDuplicateSlot recognizes a unique violation on the no-double-booking
// index for both backends: Postgres reports 23505 with the constraint name,
// the sqlite driver only gives us the error text.
func isDuplicateSlot(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == noDoubleBookingIndex
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// UserReservationRow is a booking-history line joined with venue naming.
type UserReservationRow struct {
	ID         int64     `json:"id" gorm:"column:id"`
	Reference  string    `json:"reference" gorm:"column:reference"`
	Status     string    `json:"status" gorm:"column:status"`
	Date       string    `json:"date" gorm:"column:date"`
	StartTime  string    `json:"start_time" gorm:"column:start_time"`
	EndTime    string    `json:"end_time" gorm:"column:end_time"`
	Guests     int       `json:"guests" gorm:"column:guests"`
	TotalPrice float64   `json:"total_price" gorm:"column:total_price"`
	VenueID    int64     `json:"venue_id" gorm:"column:venue_id"`
	VenueName  string    `json:"venue_name" gorm:"column:venue_name"`
	VenueCity  string    `json:"venue_city" gorm:"column:venue_city"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]UserReservationRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []UserReservationRow
	q := `
SELECT
  b.id,
  b.reference,
  b.status,
  b.date,
  b.start_time,
  b.end_time,
  b.guests,
  b.total_price,
  b.venue_id,
  v.name AS venue_name,
  v.city AS venue_city,
  b.created_at
FROM reservations b
JOIN venues v ON v.id = b.venue_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("date DESC, start_time").
		Find(&rows).Error
	return rows, err
}

func (r *BookingRepository) GetVenueOwnerForReservation(ctx context.Context, reservationID int64) (int64, string, error) {
	type row struct {
		OwnerID int64  `gorm:"column:owner_id"`
		Status  string `gorm:"column:status"`
	}
	var out row
	q := `
SELECT v.owner_id, b.status
FROM reservations b
JOIN venues v ON v.id = b.venue_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, reservationID).Scan(&out)
	if tx.Error != nil {
		return 0, "", tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, "", nil
	}
	return out.OwnerID, out.Status, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", reservationID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, reservationID int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", reservationID).
		Updates(map[string]any{
			"status":              string(domain.ReservationCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}
