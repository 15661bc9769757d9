package response

import (
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/queries"
)

type BookingRequestResponse = queries.BookingRequestView

type CreateBookingRequestResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromCreateResult(r *commands.CreateBookingRequestResult) *CreateBookingRequestResponse {
	return &CreateBookingRequestResponse{
		ID:     r.RequestID.String(),
		Status: r.Status.String(),
	}
}

type ApproveResponse struct {
	RequestID        string `json:"request_id"`
	Status           string `json:"status"`
	BookingID        string `json:"booking_id"`
	SessionID        string `json:"session_id"`
	ConfirmationCode string `json:"confirmation_code"`
	AvailableSpots   int    `json:"available_spots"`
}

func FromApproveResult(r *commands.ApproveResult) *ApproveResponse {
	return &ApproveResponse{
		RequestID:        r.RequestID.String(),
		Status:           "APPROVED",
		BookingID:        r.BookingID.String(),
		SessionID:        r.SessionID.String(),
		ConfirmationCode: r.ConfirmationCode,
		AvailableSpots:   r.AvailableSpots,
	}
}

type BookingRequestListResponse struct {
	Items  []*queries.BookingRequestView `json:"items"`
	Limit  int                           `json:"limit"`
	Offset int                           `json:"offset"`
}

type AvailabilityResponse = queries.AvailabilityView
