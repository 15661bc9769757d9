package api

import (
	"errors"
	"net/http"

	"parkease/internal/handler/httperr"
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// first match wins
var errorMappings = []errorMapping{
	{commands.ErrInvalidWindow, http.StatusBadRequest, "Requested window is invalid"},
	{commands.ErrMissingReason, http.StatusBadRequest, "Rejection reason is required"},
	{commands.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
	{commands.ErrForbidden, http.StatusForbidden, "Not allowed to act on this booking request"},
	{queries.ErrForbidden, http.StatusForbidden, "Not allowed to read booking requests of this location"},
	{commands.ErrRequestNotFound, http.StatusNotFound, "Booking request not found"},
	{queries.ErrBookingRequestNotFound, http.StatusNotFound, "Booking request not found"},
	{commands.ErrLocationNotFound, http.StatusNotFound, "Parking location not found"},
	{queries.ErrLocationNotFound, http.StatusNotFound, "Parking location not found"},
	{commands.ErrAlreadyProcessed, http.StatusConflict, "Booking request has already been processed"},
	{commands.ErrCapacityExceeded, http.StatusConflict, "No parking spot available for the requested window"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			var detail any
			if m.target == commands.ErrDomainValidation {
				detail = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, m.message, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

var errUnauthenticated = errors.New("no authenticated user in context")
