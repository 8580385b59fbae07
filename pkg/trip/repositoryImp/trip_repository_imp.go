package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripagent/entities"
	"tripagent/pkg/trip/repository"
	"tripagent/pkg/trip/types"
)

type tripRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TripRepository { return &tripRepo{db: db} }

func (r *tripRepo) Save(userID string, req types.TripRequest, plan types.TripPlan) (string, error) {
	rec := entities.TripPlanRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		RequestData:  req,
		ResponseData: plan,
	}
	if err := r.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *tripRepo) ListByUser(userID string, limit int) ([]entities.TripPlanRecord, error) {
	var recs []entities.TripPlanRecord
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

func (r *tripRepo) FindByID(id, userID string) (*entities.TripPlanRecord, error) {
	var rec entities.TripPlanRecord
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
