package repository

import (
	"tripagent/entities"
	"tripagent/pkg/trip/types"
)

// TripRepository is the narrow persistence seam: save a plan under a user,
// list a user's history, fetch one plan with the ownership check applied.
type TripRepository interface {
	Save(userID string, req types.TripRequest, plan types.TripPlan) (string, error)
	ListByUser(userID string, limit int) ([]entities.TripPlanRecord, error)
	// FindByID returns gorm.ErrRecordNotFound when the id does not exist or
	// belongs to another user.
	FindByID(id, userID string) (*entities.TripPlanRecord, error)
}
