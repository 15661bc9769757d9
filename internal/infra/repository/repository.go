package repository

import (
	sq "github.com/Masterminds/squirrel"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	bookingRequestsTable  = "booking_requests"
	bookingsTable         = "bookings"
	parkingSessionsTable  = "parking_sessions"
	parkingLocationsTable = "parking_locations"
)
