//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/domain/booking"
	"parkease/internal/domain/bookingrequest"
	"parkease/internal/domain/location"
	"parkease/internal/domain/session"
	"parkease/internal/domain/user"
	"parkease/internal/pkg/clock"
	"parkease/internal/pkg/errs"
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/shared"
	"parkease/tests/common/builder"
	"parkease/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nineAM = time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC)
	now    = nineAM.Add(-48 * time.Hour)
)

type fixture struct {
	store    *memstore.Store
	notifier *memstore.Notifier
	codes    *memstore.Codes
	uc       commands.BookingRequestCommands

	loc        *location.Location
	owner      user.Actor
	otherOwner user.Actor
	admin      user.Actor
	watchman   user.Actor
	customer   user.Actor
}

func newFixture(t *testing.T, totalSpots int) *fixture {
	t.Helper()

	ownerProfile, otherProfile := uuid.New(), uuid.New()
	loc, err := location.Reconstruct(uuid.New(), ownerProfile, "Harbor Lot", totalSpots, totalSpots)
	require.NoError(t, err)

	f := &fixture{
		store:      memstore.New(),
		notifier:   &memstore.Notifier{},
		codes:      &memstore.Codes{},
		loc:        loc,
		owner:      user.Actor{ID: uuid.New(), Role: user.RoleOwner, OwnerProfileID: &ownerProfile},
		otherOwner: user.Actor{ID: uuid.New(), Role: user.RoleOwner, OwnerProfileID: &otherProfile},
		admin:      user.Actor{ID: uuid.New(), Role: user.RoleAdmin},
		watchman:   user.Actor{ID: uuid.New(), Role: user.RoleWatchman, EmployerOwnerID: &ownerProfile},
		customer:   user.Actor{ID: uuid.New(), Role: user.RoleCustomer},
	}
	for _, a := range []user.Actor{f.owner, f.otherOwner, f.admin, f.watchman, f.customer} {
		f.store.AddActor(a)
	}
	f.store.AddLocation(loc)

	f.uc = commands.NewBookingRequestUseCase(commands.Deps{
		UoW:           f.store,
		Codes:         f.codes,
		Notifier:      f.notifier,
		Clock:         clock.NewMockClock(now),
		Pricing:       booking.DefaultPricingPolicy(),
		NotifyTimeout: time.Second,
	})
	return f
}

// pending seeds a PENDING request filed by the watchman.
func (f *fixture) pending(t *testing.T, start, end time.Time) *bookingrequest.Request {
	t.Helper()
	req, err := builder.NewBookingRequestBuilder().
		WithLocation(f.loc.ID()).
		WithWindow(start, end).
		WithRequestedBy(f.watchman.ID).
		BuildDomain()
	require.NoError(t, err)
	f.store.AddRequest(req)
	return req
}

func (f *fixture) existingBooking(t *testing.T, start, end time.Time, status booking.Status) {
	t.Helper()
	w, err := availability.NewWindow(start, end)
	require.NoError(t, err)
	f.store.AddBooking(booking.Reconstruct(booking.ReconstructParams{
		ID:               uuid.New(),
		LocationID:       f.loc.ID(),
		Window:           w,
		Status:           status,
		ConfirmationCode: "PE-SEED" + uuid.NewString()[:4],
		CreatedAt:        now,
	}))
}

func (f *fixture) status(t *testing.T, id uuid.UUID) bookingrequest.Status {
	t.Helper()
	req, ok := f.store.Request(id)
	require.True(t, ok, "request %s should exist", id)
	return req.Status()
}

func hours(h int) time.Duration { return time.Duration(h) * time.Hour }

// =============================================================================
// Scenarios
// =============================================================================

func TestApprove_ConfirmsBookingAndReservesSession(t *testing.T) {
	f := newFixture(t, 1)
	r1 := f.pending(t, nineAM, nineAM.Add(hours(2)))

	res, err := f.uc.Approve(context.Background(), r1.ID(), f.owner.ID)
	require.NoError(t, err)

	assert.Equal(t, bookingrequest.StatusApproved, f.status(t, r1.ID()))
	assert.Equal(t, 0, f.store.Location(f.loc.ID()).AvailableSpots())
	assert.Equal(t, 0, res.AvailableSpots)

	bookings := f.store.Bookings()
	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, "PE-00000001", b.ConfirmationCode())
	assert.Equal(t, res.ConfirmationCode, b.ConfirmationCode())
	require.NotNil(t, b.SourceRequestID())
	assert.Equal(t, r1.ID(), *b.SourceRequestID())
	assert.Equal(t, booking.Guest{FirstName: "Jane", LastName: "Q Public", Email: "jane@example.com", Phone: "+15550100"}, b.Guest())
	assert.Equal(t, booking.Pricing{BaseCents: 2000, TaxCents: 200, FeeCents: 250, TotalCents: 2000}, b.Pricing())

	sessions := f.store.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, session.StatusReserved, sessions[0].Status())
	assert.Equal(t, b.ID(), sessions[0].BookingID())
	assert.Equal(t, res.SessionID, sessions[0].ID())

	sent := f.notifier.Sent()
	require.Len(t, sent, 1)
	want := shared.Notification{
		Kind:           shared.NotificationApproved,
		RecipientEmail: "jane@example.com",
		RecipientName:  "Jane Q Public",
		Data: shared.NotificationData{
			RequestID:        r1.ID(),
			LocationID:       f.loc.ID(),
			LocationName:     "Harbor Lot",
			Start:            nineAM,
			End:              nineAM.Add(hours(2)),
			Plate:            "ABC 123",
			ConfirmationCode: "PE-00000001",
			TotalCents:       2000,
		},
	}
	if diff := cmp.Diff(want, sent[0]); diff != "" {
		t.Errorf("notification mismatch (-want +got):\n%s", diff)
	}
}

func TestApprove_CapacityExceededLeavesRequestPending(t *testing.T) {
	f := newFixture(t, 1)
	r1 := f.pending(t, nineAM, nineAM.Add(hours(2)))
	r2 := f.pending(t, nineAM, nineAM.Add(hours(2)))

	_, err := f.uc.Approve(context.Background(), r1.ID(), f.owner.ID)
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), r2.ID(), f.owner.ID)
	require.ErrorIs(t, err, commands.ErrCapacityExceeded)

	assert.Equal(t, bookingrequest.StatusPending, f.status(t, r2.ID()))
	assert.Equal(t, 0, f.store.Location(f.loc.ID()).AvailableSpots())
	assert.Len(t, f.store.Bookings(), 1)
	assert.Len(t, f.notifier.Sent(), 1)
}

func TestReject_RecordsReasonWithoutBooking(t *testing.T) {
	f := newFixture(t, 1)
	r3 := f.pending(t, nineAM, nineAM.Add(hours(2)))

	err := f.uc.Reject(context.Background(), r3.ID(), f.owner.ID, "  no spots contractually reserved for walk-ins ")
	require.NoError(t, err)

	req, _ := f.store.Request(r3.ID())
	assert.Equal(t, bookingrequest.StatusRejected, req.Status())
	require.NotNil(t, req.RejectionReason())
	assert.Equal(t, "no spots contractually reserved for walk-ins", *req.RejectionReason())
	require.NotNil(t, req.ProcessedBy())
	assert.Equal(t, f.owner.ID, *req.ProcessedBy())
	assert.Empty(t, f.store.Bookings())
	assert.Equal(t, 1, f.store.Location(f.loc.ID()).AvailableSpots())

	sent := f.notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, shared.NotificationRejected, sent[0].Kind)
	assert.Equal(t, "no spots contractually reserved for walk-ins", sent[0].Data.Reason)

	// a rejected request cannot be approved afterwards
	_, err = f.uc.Approve(context.Background(), r3.ID(), f.owner.ID)
	require.ErrorIs(t, err, commands.ErrAlreadyProcessed)
	assert.Empty(t, f.store.Bookings())
}

func TestApprove_ForbiddenForOwnerOfAnotherLocation(t *testing.T) {
	f := newFixture(t, 3)
	r4 := f.pending(t, nineAM, nineAM.Add(hours(2)))

	for name, actor := range map[string]user.Actor{
		"other owner": f.otherOwner,
		"watchman":    f.watchman,
		"customer":    f.customer,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Approve(context.Background(), r4.ID(), actor.ID)
			require.ErrorIs(t, err, commands.ErrForbidden)
			assert.Equal(t, bookingrequest.StatusPending, f.status(t, r4.ID()))
		})
	}

	t.Run("unknown actor", func(t *testing.T) {
		_, err := f.uc.Approve(context.Background(), r4.ID(), uuid.New())
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("admin may approve any location", func(t *testing.T) {
		_, err := f.uc.Approve(context.Background(), r4.ID(), f.admin.ID)
		require.NoError(t, err)
	})
}

// =============================================================================
// Properties
// =============================================================================

func TestTerminalRequestsAreIdempotent(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	approved := f.pending(t, nineAM, nineAM.Add(hours(1)))
	_, err := f.uc.Approve(ctx, approved.ID(), f.owner.ID)
	require.NoError(t, err)

	rejected := f.pending(t, nineAM, nineAM.Add(hours(1)))
	require.NoError(t, f.uc.Reject(ctx, rejected.ID(), f.owner.ID, "duplicate"))

	cancelled := f.pending(t, nineAM, nineAM.Add(hours(1)))
	require.NoError(t, f.uc.Cancel(ctx, cancelled.ID(), f.watchman.ID))

	bookings, sessions, notes := len(f.store.Bookings()), len(f.store.Sessions()), len(f.notifier.Sent())
	spots := f.store.Location(f.loc.ID()).AvailableSpots()

	for _, id := range []uuid.UUID{approved.ID(), rejected.ID(), cancelled.ID()} {
		_, err := f.uc.Approve(ctx, id, f.owner.ID)
		assert.ErrorIs(t, err, commands.ErrAlreadyProcessed)
		assert.ErrorIs(t, f.uc.Reject(ctx, id, f.owner.ID, "again"), commands.ErrAlreadyProcessed)
		assert.ErrorIs(t, f.uc.Cancel(ctx, id, f.owner.ID), commands.ErrAlreadyProcessed)
	}

	assert.Len(t, f.store.Bookings(), bookings)
	assert.Len(t, f.store.Sessions(), sessions)
	assert.Len(t, f.notifier.Sent(), notes)
	assert.Equal(t, spots, f.store.Location(f.loc.ID()).AvailableSpots())
}

func TestApprove_BoundaryWindowsDoNotOverlap(t *testing.T) {
	f := newFixture(t, 1)
	ten := nineAM.Add(hours(1))
	morning := f.pending(t, ten, ten.Add(hours(2)))
	afternoon := f.pending(t, ten.Add(hours(2)), ten.Add(hours(4)))

	_, err := f.uc.Approve(context.Background(), morning.ID(), f.owner.ID)
	require.NoError(t, err)
	_, err = f.uc.Approve(context.Background(), afternoon.ID(), f.owner.ID)
	require.NoError(t, err)

	assert.Len(t, f.store.Bookings(), 2)
	assert.Equal(t, 0, f.store.Location(f.loc.ID()).AvailableSpots())
}

func TestApprove_OnlyCapacityHoldingBookingsCount(t *testing.T) {
	f := newFixture(t, 1)
	f.existingBooking(t, nineAM, nineAM.Add(hours(2)), booking.StatusCancelled)
	f.existingBooking(t, nineAM, nineAM.Add(hours(2)), booking.StatusCompleted)
	req := f.pending(t, nineAM, nineAM.Add(hours(2)))

	_, err := f.uc.Approve(context.Background(), req.ID(), f.owner.ID)
	require.NoError(t, err)

	f2 := newFixture(t, 1)
	f2.existingBooking(t, nineAM.Add(hours(1)), nineAM.Add(hours(3)), booking.StatusPending)
	blocked := f2.pending(t, nineAM, nineAM.Add(hours(2)))

	_, err = f2.uc.Approve(context.Background(), blocked.ID(), f2.owner.ID)
	require.ErrorIs(t, err, commands.ErrCapacityExceeded)
}

func TestApprove_CounterFollowsWindowCheck(t *testing.T) {
	f := newFixture(t, 3)
	// a stale counter must not leak into the stored value
	stale, err := location.Reconstruct(f.loc.ID(), f.loc.OwnerID(), f.loc.Name(), 3, 0)
	require.NoError(t, err)
	f.store.AddLocation(stale)
	f.existingBooking(t, nineAM.Add(hours(5)), nineAM.Add(hours(6)), booking.StatusConfirmed)
	f.existingBooking(t, nineAM.Add(hours(1)), nineAM.Add(hours(3)), booking.StatusConfirmed)
	req := f.pending(t, nineAM, nineAM.Add(hours(2)))

	res, err := f.uc.Approve(context.Background(), req.ID(), f.owner.ID)
	require.NoError(t, err)

	next, ok := f.loc.CounterAfterBooking(2)
	require.True(t, ok)
	assert.Equal(t, next, res.AvailableSpots)
	assert.Equal(t, 1, f.store.Location(f.loc.ID()).AvailableSpots())
}

func TestApprove_CounterFailureRollsBackEverything(t *testing.T) {
	cases := map[string]func(*memstore.Store){
		"claim spot fails":     func(s *memstore.Store) { s.FailClaimSpot = errors.New("deadlock detected") },
		"session insert fails": func(s *memstore.Store) { s.FailSessionCreate = errors.New("connection reset") },
		"booking insert fails": func(s *memstore.Store) { s.FailBookingCreate = shared.ErrDuplicate },
	}
	for name, inject := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, 2)
			req := f.pending(t, nineAM, nineAM.Add(hours(2)))
			inject(f.store)

			_, err := f.uc.Approve(context.Background(), req.ID(), f.owner.ID)
			require.Error(t, err)
			assert.True(t, errs.Is(err, commands.ErrPersistenceFailure), "got %v", err)

			assert.Empty(t, f.store.Bookings())
			assert.Empty(t, f.store.Sessions())
			assert.Equal(t, bookingrequest.StatusPending, f.status(t, req.ID()))
			assert.Equal(t, 2, f.store.Location(f.loc.ID()).AvailableSpots())
			assert.Empty(t, f.notifier.Sent())
			assert.Equal(t, 1, f.store.Rollbacks())
		})
	}
}

func TestApprove_CodeGenerationFailureAborts(t *testing.T) {
	f := newFixture(t, 1)
	req := f.pending(t, nineAM, nineAM.Add(hours(2)))
	f.codes.Err = errors.New("confirmation code space exhausted")

	_, err := f.uc.Approve(context.Background(), req.ID(), f.owner.ID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrPersistenceFailure))
	assert.Equal(t, bookingrequest.StatusPending, f.status(t, req.ID()))
}

func TestReject_RequiresReason(t *testing.T) {
	f := newFixture(t, 1)
	req := f.pending(t, nineAM, nineAM.Add(hours(2)))

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := f.uc.Reject(context.Background(), req.ID(), f.owner.ID, reason)
		require.ErrorIs(t, err, commands.ErrMissingReason)
	}
	assert.Equal(t, bookingrequest.StatusPending, f.status(t, req.ID()))
	assert.Zero(t, f.store.Commits()+f.store.Rollbacks(), "reason is checked before any storage access")

	// the reason check comes before existence and authorization
	err := f.uc.Reject(context.Background(), uuid.New(), f.customer.ID, "")
	require.ErrorIs(t, err, commands.ErrMissingReason)
}

func TestApprove_ConcurrentApprovalsRespectCapacity(t *testing.T) {
	const n = 16
	f := newFixture(t, 1)

	ids := make([]uuid.UUID, n)
	for i := range ids {
		// overlapping but not identical windows
		start := nineAM.Add(time.Duration(i) * time.Minute)
		ids[i] = f.pending(t, start, start.Add(hours(2))).ID()
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		exceeded  int
	)
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Approve(context.Background(), id, f.owner.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, commands.ErrCapacityExceeded):
				exceeded++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, exceeded)
	assert.Len(t, f.store.Bookings(), 1)
	assert.Len(t, f.store.Sessions(), 1)

	loc := f.store.Location(f.loc.ID())
	assert.GreaterOrEqual(t, loc.AvailableSpots(), 0)
	assert.LessOrEqual(t, loc.AvailableSpots(), loc.TotalSpots())
}

func TestNotificationFailureDoesNotUndoTransition(t *testing.T) {
	f := newFixture(t, 1)
	f.notifier.Err = errors.New("smtp: 421 service not available")

	approved := f.pending(t, nineAM, nineAM.Add(hours(2)))
	res, err := f.uc.Approve(context.Background(), approved.ID(), f.owner.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ConfirmationCode)
	assert.Equal(t, bookingrequest.StatusApproved, f.status(t, approved.ID()))

	rejected := f.pending(t, nineAM, nineAM.Add(hours(2)))
	require.NoError(t, f.uc.Reject(context.Background(), rejected.ID(), f.owner.ID, "full"))
	assert.Equal(t, bookingrequest.StatusRejected, f.status(t, rejected.ID()))

	assert.Len(t, f.notifier.Sent(), 2)
}

type ctxRecorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *ctxRecorder) Notify(ctx context.Context, _ shared.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, ctx.Err())
	return nil
}

func TestApprove_CallerCancellationDoesNotCancelNotification(t *testing.T) {
	f := newFixture(t, 1)
	rec := &ctxRecorder{}
	uc := commands.NewBookingRequestUseCase(commands.Deps{
		UoW:      f.store,
		Codes:    f.codes,
		Notifier: rec,
		Clock:    clock.NewMockClock(now),
		Pricing:  booking.DefaultPricingPolicy(),
	})
	req := f.pending(t, nineAM, nineAM.Add(hours(2)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Approve(ctx, req.ID(), f.owner.ID)
	require.NoError(t, err)

	require.Len(t, rec.errs, 1)
	assert.NoError(t, rec.errs[0])
}

func TestNotificationSkippedWithoutEmail(t *testing.T) {
	f := newFixture(t, 1)
	req, err := builder.NewBookingRequestBuilder().
		WithLocation(f.loc.ID()).
		WithRequestedBy(f.watchman.ID).
		With(func(b *builder.BookingRequestBuilder) { b.CustomerEmail = "" }).
		BuildDomain()
	require.NoError(t, err)
	f.store.AddRequest(req)

	_, err = f.uc.Approve(context.Background(), req.ID(), f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, f.notifier.Sent())
}

func TestApprove_UnknownRequest(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.uc.Approve(context.Background(), uuid.New(), f.owner.ID)
	require.ErrorIs(t, err, commands.ErrRequestNotFound)
}

// =============================================================================
// Create / Cancel / Delete
// =============================================================================

func TestCreate(t *testing.T) {
	t.Run("watchman of the owning owner files a pending request", func(t *testing.T) {
		f := newFixture(t, 1)
		in := builder.NewBookingRequestBuilder().WithLocation(f.loc.ID()).BuildInput()

		res, err := f.uc.Create(context.Background(), in, f.watchman.ID)
		require.NoError(t, err)
		assert.Equal(t, bookingrequest.StatusPending, res.Status)

		req, ok := f.store.Request(res.RequestID)
		require.True(t, ok)
		assert.Equal(t, f.watchman.ID, req.RequestedBy())
		assert.Equal(t, now, req.RequestedAt())
		assert.Equal(t, "ABC 123", req.Vehicle().Plate)
	})

	errorCases := []struct {
		name    string
		mutate  func(*builder.BookingRequestBuilder)
		actor   func(*fixture) uuid.UUID
		wantErr error
	}{
		{
			name:    "inverted window",
			mutate:  func(b *builder.BookingRequestBuilder) { b.End = b.Start.Add(-time.Hour) },
			wantErr: commands.ErrInvalidWindow,
		},
		{
			name:    "blank customer name",
			mutate:  func(b *builder.BookingRequestBuilder) { b.CustomerName = "  " },
			wantErr: commands.ErrDomainValidation,
		},
		{
			name:    "unknown location",
			mutate:  func(b *builder.BookingRequestBuilder) { b.LocationID = uuid.New() },
			wantErr: commands.ErrLocationNotFound,
		},
		{
			name:    "owner of another location",
			actor:   func(f *fixture) uuid.UUID { return f.otherOwner.ID },
			wantErr: commands.ErrForbidden,
		},
		{
			name:    "customer",
			actor:   func(f *fixture) uuid.UUID { return f.customer.ID },
			wantErr: commands.ErrForbidden,
		},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, 1)
			b := builder.NewBookingRequestBuilder().WithLocation(f.loc.ID())
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actorID := f.watchman.ID
			if tc.actor != nil {
				actorID = tc.actor(f)
			}

			_, err := f.uc.Create(context.Background(), b.BuildInput(), actorID)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCancel(t *testing.T) {
	t.Run("requester may cancel", func(t *testing.T) {
		f := newFixture(t, 1)
		req := f.pending(t, nineAM, nineAM.Add(hours(2)))

		require.NoError(t, f.uc.Cancel(context.Background(), req.ID(), f.watchman.ID))
		assert.Equal(t, bookingrequest.StatusCancelled, f.status(t, req.ID()))
		assert.Empty(t, f.notifier.Sent())
		assert.Empty(t, f.store.Bookings())
	})

	t.Run("owning owner may cancel", func(t *testing.T) {
		f := newFixture(t, 1)
		req := f.pending(t, nineAM, nineAM.Add(hours(2)))
		require.NoError(t, f.uc.Cancel(context.Background(), req.ID(), f.owner.ID))
	})

	t.Run("unrelated owner may not", func(t *testing.T) {
		f := newFixture(t, 1)
		req := f.pending(t, nineAM, nineAM.Add(hours(2)))
		require.ErrorIs(t, f.uc.Cancel(context.Background(), req.ID(), f.otherOwner.ID), commands.ErrForbidden)
		assert.Equal(t, bookingrequest.StatusPending, f.status(t, req.ID()))
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes an approved request and the booking survives", func(t *testing.T) {
		f := newFixture(t, 1)
		req := f.pending(t, nineAM, nineAM.Add(hours(2)))
		_, err := f.uc.Approve(context.Background(), req.ID(), f.owner.ID)
		require.NoError(t, err)

		require.NoError(t, f.uc.Delete(context.Background(), req.ID(), f.owner.ID))

		_, ok := f.store.Request(req.ID())
		assert.False(t, ok)
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("watchman may not delete", func(t *testing.T) {
		f := newFixture(t, 1)
		req := f.pending(t, nineAM, nineAM.Add(hours(2)))
		require.ErrorIs(t, f.uc.Delete(context.Background(), req.ID(), f.watchman.ID), commands.ErrForbidden)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t, 1)
		require.ErrorIs(t, f.uc.Delete(context.Background(), uuid.New(), f.admin.ID), commands.ErrRequestNotFound)
	})
}
