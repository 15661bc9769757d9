package queries

import (
	"context"
	"errors"
	"time"

	"parkease/internal/domain/availability"
	"parkease/internal/pkg/errs"
	"parkease/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrLocationNotFound = errs.New("parking location not found in read model")

//go:generate mockgen -destination=../../../tests/mock/queries/availability_queries.go -package=queriesmock parkease/internal/usecase/queries AvailabilityQueries

// AvailabilityQueries answers "is there a free spot" without reserving
// anything. Approval repeats the same check under lock.
type AvailabilityQueries interface {
	Check(ctx context.Context, locationID uuid.UUID, start, end time.Time) (*AvailabilityView, error)
}

type AvailabilityReadRepo interface {
	LocationReader
	ListOccupancies(ctx context.Context, locationID uuid.UUID, w availability.Window) ([]availability.Occupancy, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityReadRepo
}

func NewAvailabilityQueries(repo AvailabilityReadRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, locationID uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	window, err := availability.NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	loc, err := q.repo.FindLocation(ctx, locationID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}

	occupancies, err := q.repo.ListOccupancies(ctx, locationID, window)
	if err != nil {
		return nil, err
	}

	res := availability.Evaluate(loc.TotalSpots, window, occupancies)
	return &AvailabilityView{
		LocationID:  locationID,
		Start:       window.Start(),
		End:         window.End(),
		TotalSpots:  res.TotalSpots,
		Overlapping: res.Overlapping,
		Remaining:   max(res.Remaining, 0),
		Available:   res.Available(),
	}, nil
}
