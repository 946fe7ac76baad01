package booking

type CreateBookingRequest struct {
	VenueID     int64  `json:"venue_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	BookingType string `json:"booking_type" binding:"required,oneof=hourly full_day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Guests      int    `json:"guests" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
