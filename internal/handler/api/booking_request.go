package api

import (
	"net/http"

	reqdto "parkease/internal/handler/dto/request"
	resdto "parkease/internal/handler/dto/response"
	"parkease/internal/handler/httperr"
	"parkease/internal/handler/middleware"
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingRequestHandler struct {
	cmds commands.BookingRequestCommands
	q    queries.BookingRequestQueries
}

func NewBookingRequestHandler(cmds commands.BookingRequestCommands, q queries.BookingRequestQueries) *BookingRequestHandler {
	return &BookingRequestHandler{cmds: cmds, q: q}
}

// pathIDAndActor parses :id and reads the authenticated user. It aborts the
// request and reports false on failure.
func pathIDAndActor(c *gin.Context, param string) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return id, actorID, true
}

// @Summary Create booking request
// @Description Submit a pending booking request for a parking location
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-requests [post]
func (h *BookingRequestHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/booking-requests/"+result.RequestID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Get booking request
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-requests/{id} [get]
func (h *BookingRequestHandler) Get(c *gin.Context) {
	id, actorID, ok := pathIDAndActor(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, actorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List booking requests for a location
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param status query string false "PENDING, APPROVED, REJECTED or CANCELLED"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} resdto.BookingRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/locations/{id}/booking-requests [get]
func (h *BookingRequestHandler) ListByLocation(c *gin.Context) {
	locationID, actorID, ok := pathIDAndActor(c, "id")
	if !ok {
		return
	}
	var q reqdto.ListBookingRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	filter := queries.ListFilter{Status: q.Status, Limit: q.Limit, Offset: q.Offset}
	items, err := h.q.ListByLocation(c.Request.Context(), locationID, actorID, filter)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	limit, offset := filter.Effective()
	c.JSON(http.StatusOK, resdto.BookingRequestListResponse{Items: items, Limit: limit, Offset: offset})
}

// @Summary Approve booking request
// @Description Approve a pending request, creating a confirmed booking and a reserved session
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-requests/{id}/approve [post]
func (h *BookingRequestHandler) Approve(c *gin.Context) {
	id, actorID, ok := pathIDAndActor(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.Approve(c.Request.Context(), id, actorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApproveResult(result))
}

// @Summary Reject booking request
// @Tags booking-requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Param request body reqdto.RejectBookingRequest true "Rejection reason"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-requests/{id}/reject [post]
func (h *BookingRequestHandler) Reject(c *gin.Context) {
	id, actorID, ok := pathIDAndActor(c, "id")
	if !ok {
		return
	}
	var req reqdto.RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	if err := h.cmds.Reject(c.Request.Context(), id, actorID, req.Reason); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking request
// @Tags booking-requests
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-requests/{id}/cancel [post]
func (h *BookingRequestHandler) Cancel(c *gin.Context) {
	id, actorID, ok := pathIDAndActor(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, actorID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete booking request
// @Tags booking-requests
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-requests/{id} [delete]
func (h *BookingRequestHandler) Delete(c *gin.Context) {
	id, actorID, ok := pathIDAndActor(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actorID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
