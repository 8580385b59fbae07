package service

import (
	"context"

	"tripagent/pkg/trip/types"
)

// TripService generates an itinerary for a request. It never returns an
// error: any failure inside the pipeline degrades to the deterministic
// fallback plan, so a validated request always yields a plan. Progress is
// pushed to the log stream identified by streamID; pass "" for none.
type TripService interface {
	PlanTrip(ctx context.Context, req types.TripRequest, streamID string) types.TripPlan
}
