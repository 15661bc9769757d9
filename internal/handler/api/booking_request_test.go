//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"parkease/internal/domain/bookingrequest"
	"parkease/internal/domain/user"
	"parkease/internal/handler/api"
	reqdto "parkease/internal/handler/dto/request"
	resdto "parkease/internal/handler/dto/response"
	"parkease/internal/pkg/errs"
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/queries"
	"parkease/tests/common/builder"
	"parkease/tests/common/httptest"
	"parkease/tests/common/testutil"
	commandsmock "parkease/tests/mock/commands"
	queriesmock "parkease/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingRequestCommands
	mockQueries  *queriesmock.MockBookingRequestQueries
	mockAvail    *queriesmock.MockAvailabilityQueries
	actorID      uuid.UUID
}

func (s *BookingRequestHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *BookingRequestHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingRequestQueries(s.mockCtrl)
	s.mockAvail = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.actorID = uuid.New()

	h := api.NewBookingRequestHandler(s.mockCommands, s.mockQueries)
	ah := api.NewAvailabilityHandler(s.mockAvail)

	// stands in for RequireAuth
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleOwner)
		c.Next()
	}

	g := s.router.Group("/api", authMiddleware)
	g.POST("/booking-requests", h.Create)
	g.GET("/booking-requests/:id", h.Get)
	g.POST("/booking-requests/:id/approve", h.Approve)
	g.POST("/booking-requests/:id/reject", h.Reject)
	g.POST("/booking-requests/:id/cancel", h.Cancel)
	g.DELETE("/booking-requests/:id", h.Delete)
	g.GET("/locations/:id/booking-requests", h.ListByLocation)
	g.GET("/locations/:id/availability", ah.Check)
}

func (s *BookingRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingRequestHandlerTestSuite))
}

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingRequestHandlerTestSuite) TestCreate() {
	url := "/api/booking-requests"
	b := builder.NewBookingRequestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := &commands.CreateBookingRequestResult{RequestID: uuid.New(), Status: bookingrequest.StatusPending}

	s.Run("success: returns 201 with location header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actorID).
			DoAndReturn(func(_ any, in commands.CreateBookingRequestInput, _ uuid.UUID) (*commands.CreateBookingRequestResult, error) {
				s.Equal(b.LocationID, in.LocationID)
				s.Equal("jane@example.com", in.CustomerEmail)
				s.Equal(b.Start, in.Start)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.RequestID.String(), body.ID)
		s.Equal("PENDING", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/booking-requests/" + created.RequestID.String()})
	})

	validation := []testCase{
		{name: "missing location_id", mutate: testutil.Field("location_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing customer_name", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
		{name: "bad email", mutate: testutil.Field("customer_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "plate with symbols", mutate: testutil.Field("vehicle_plate", "AB#12"), expectCode: http.StatusBadRequest},
		{name: "plate too long", mutate: testutil.Field("vehicle_plate", strings.Repeat("A", 17)), expectCode: http.StatusBadRequest},
		{name: "end before start", mutate: testutil.Field("end", b.Start.Add(-time.Hour).Format(time.RFC3339)), expectCode: http.StatusBadRequest},
		{name: "end equals start", mutate: testutil.Field("end", b.Start.Format(time.RFC3339)), expectCode: http.StatusBadRequest},
		{name: "unknown kind", mutate: testutil.Field("kind", "RENEWAL"), expectCode: http.StatusBadRequest},
		{name: "unknown priority", mutate: testutil.Field("priority", "CRITICAL"), expectCode: http.StatusBadRequest},
		{name: "negative estimate", mutate: testutil.Field("estimated_cents", -1), expectCode: http.StatusBadRequest},
		{name: "notes at limit", mutate: testutil.Field("notes", strings.Repeat("n", 2000)), expectCode: http.StatusCreated},
		{name: "notes over limit", mutate: testutil.Field("notes", strings.Repeat("n", 2001)), expectCode: http.StatusBadRequest},
		{name: "optional email omitted", mutate: testutil.Field("customer_email", nil), expectCode: http.StatusCreated},
	}

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: malformed json", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"location_id":`, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, bookingrequest.ErrInvalidCustomerName).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: unknown location maps to 404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrLocationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Parking location not found")
	})
}

// ================================================================================
// TestApprove
// ================================================================================

func (s *BookingRequestHandlerTestSuite) TestApprove() {
	id := uuid.New()
	url := "/api/booking-requests/" + id.String() + "/approve"

	s.Run("success: returns booking details", func() {
		result := &commands.ApproveResult{
			RequestID:        id,
			BookingID:        uuid.New(),
			SessionID:        uuid.New(),
			ConfirmationCode: "PE-ABCDEFGH",
			AvailableSpots:   4,
		}
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.actorID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ApproveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
		s.Equal("PE-ABCDEFGH", body.ConfirmationCode)
		s.Equal(result.BookingID.String(), body.BookingID)
		s.Equal(4, body.AvailableSpots)
	})

	errorCases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"already processed", commands.ErrAlreadyProcessed, http.StatusConflict, "already been processed"},
		{"capacity exceeded", commands.ErrCapacityExceeded, http.StatusConflict, "No parking spot available"},
		{"forbidden", commands.ErrForbidden, http.StatusForbidden, "Not allowed"},
		{"not found", commands.ErrRequestNotFound, http.StatusNotFound, "Booking request not found"},
		{"persistence failure", errs.Mark(errs.New("connection reset"), commands.ErrPersistenceFailure), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Approve(gomock.Any(), id, s.actorID).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
		})
	}

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking-requests/not-a-uuid/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestReject / TestCancel / TestDelete
// ================================================================================

func (s *BookingRequestHandlerTestSuite) TestReject() {
	id := uuid.New()
	url := "/api/booking-requests/" + id.String() + "/reject"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, s.actorID, "Lot closed for maintenance").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RejectBookingRequest{Reason: "Lot closed for maintenance"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: blank reason is a 400 from the lifecycle", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, s.actorID, "   ").Return(commands.ErrMissingReason).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RejectBookingRequest{Reason: "   "}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Rejection reason is required")
	})

	s.Run("error: already processed", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, s.actorID, "full").Return(commands.ErrAlreadyProcessed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RejectBookingRequest{Reason: "full"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been processed")
	})
}

func (s *BookingRequestHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/booking-requests/" + id.String() + "/cancel"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: forbidden", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID).Return(commands.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

func (s *BookingRequestHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/booking-requests/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actorID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actorID).Return(commands.ErrRequestNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking request not found")
	})
}

// ================================================================================
// Queries
// ================================================================================

func (s *BookingRequestHandlerTestSuite) TestGet() {
	view := builder.NewBookingRequestBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking-requests/"+view.ID.String(), nil, "bearer-token")

		var body queries.BookingRequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("ABC 123", body.VehiclePlate)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), s.actorID).Return(nil, queries.ErrBookingRequestNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking-requests/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking request not found")
	})
}

func (s *BookingRequestHandlerTestSuite) TestListByLocation() {
	locationID := uuid.New()
	url := "/api/locations/" + locationID.String() + "/booking-requests"

	s.Run("passes filter through", func() {
		view := builder.NewBookingRequestBuilder().WithLocation(locationID).BuildView()
		s.mockQueries.EXPECT().ListByLocation(gomock.Any(), locationID, s.actorID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, f queries.ListFilter) ([]*queries.BookingRequestView, error) {
				s.Require().NotNil(f.Status)
				s.Equal("PENDING", *f.Status)
				s.Equal(10, f.Limit)
				return []*queries.BookingRequestView{view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=PENDING&limit=10", nil, "bearer-token")

		var body resdto.BookingRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal(10, body.Limit)
	})

	s.Run("reports the applied default limit", func() {
		s.mockQueries.EXPECT().ListByLocation(gomock.Any(), locationID, s.actorID, gomock.Any()).
			Return([]*queries.BookingRequestView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(50, body.Limit)
		s.Equal(0, body.Offset)
		s.NotNil(body.Items)
	})

	s.Run("error: caller outside the tenant", func() {
		s.mockQueries.EXPECT().ListByLocation(gomock.Any(), locationID, s.actorID, gomock.Any()).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed to read")
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=DONE", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingRequestHandlerTestSuite) TestAvailability() {
	locationID := uuid.New()
	start := time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	url := "/api/locations/" + locationID.String() + "/availability?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)

	s.Run("success", func() {
		s.mockAvail.EXPECT().Check(gomock.Any(), locationID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, gotStart, gotEnd time.Time) (*queries.AvailabilityView, error) {
				s.True(start.Equal(gotStart))
				s.True(end.Equal(gotEnd))
				return &queries.AvailabilityView{
					LocationID: locationID, Start: start, End: end, TotalSpots: 5, Overlapping: 2, Remaining: 3, Available: true,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Remaining)
		s.True(body.Available)
	})

	s.Run("error: inverted window", func() {
		s.mockAvail.EXPECT().Check(gomock.Any(), locationID, gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidWindow).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Requested window is invalid")
	})

	s.Run("error: missing end", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/locations/"+locationID.String()+"/availability?start="+start.Format(time.RFC3339), nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
