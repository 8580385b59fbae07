package entities

import (
	"time"

	"tripagent/pkg/trip/types"
)

// TripPlanRecord persists one planning request/response pair for a logged-in
// user. The payloads are stored as JSON columns, mirroring the external
// store's {user_id, request_data, response_data} schema.
type TripPlanRecord struct {
	ID           string            `gorm:"primaryKey;size:36" json:"id"`
	UserID       string            `gorm:"index;size:64" json:"user_id"`
	RequestData  types.TripRequest `gorm:"serializer:json" json:"request_data"`
	ResponseData types.TripPlan    `gorm:"serializer:json" json:"response_data"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (TripPlanRecord) TableName() string { return "trip_plans" }
