package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripagent/entities"
	"tripagent/pkg/trip/repository"
	"tripagent/pkg/trip/types"
)

func newTestRepo(t *testing.T) repository.TripRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.TripPlanRecord{}))
	return New(db)
}

func sampleData(city string) (types.TripRequest, types.TripPlan) {
	req := types.TripRequest{
		City:       city,
		StartDate:  "2025-05-01",
		EndDate:    "2025-05-02",
		TravelDays: 2,
	}
	plan := types.TripPlan{
		City:      city,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days: []types.DayPlan{
			{Date: "2025-05-01", Meals: []types.Meal{{Type: types.MealBreakfast, Name: "早餐"}}},
		},
	}
	return req, plan
}

func TestSaveAndFindRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	req, plan := sampleData("北京")

	id, err := repo.Save("user-a", req, plan)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := repo.FindByID(id, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "北京", rec.RequestData.City)
	assert.Equal(t, "北京", rec.ResponseData.City)
	require.Len(t, rec.ResponseData.Days, 1)
	assert.Equal(t, types.MealBreakfast, rec.ResponseData.Days[0].Meals[0].Type)
}

func TestFindByIDEnforcesOwnership(t *testing.T) {
	repo := newTestRepo(t)
	req, plan := sampleData("北京")

	id, err := repo.Save("user-a", req, plan)
	require.NoError(t, err)

	// A valid caller who does not own the plan gets not-found, not the plan.
	_, err = repo.FindByID(id, "user-b")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByIDUnknownID(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.FindByID("no-such-id", "user-a")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListByUserFiltersAndLimits(t *testing.T) {
	repo := newTestRepo(t)

	for _, city := range []string{"北京", "上海", "西安"} {
		req, plan := sampleData(city)
		_, err := repo.Save("user-a", req, plan)
		require.NoError(t, err)
	}
	reqB, planB := sampleData("广州")
	_, err := repo.Save("user-b", reqB, planB)
	require.NoError(t, err)

	recs, err := repo.ListByUser("user-a", 50)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, "user-a", r.UserID)
	}

	limited, err := repo.ListByUser("user-a", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
