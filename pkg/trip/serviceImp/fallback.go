package serviceImp

import (
	"fmt"
	"time"

	"tripagent/pkg/trip/types"
)

// FallbackPlan builds a deterministic placeholder itinerary without any
// agent calls: contiguous dates from start_date, two stand-in attractions
// per day on linearly offset coordinates, three stand-in meals per day, no
// weather. It is the terminal answer whenever generation or parsing fails.
func FallbackPlan(req types.TripRequest) types.TripPlan {
	start, err := time.Parse(types.DateLayout, req.StartDate)
	if err != nil {
		start = time.Now()
	}

	days := make([]types.DayPlan, 0, req.TravelDays)
	for i := 0; i < req.TravelDays; i++ {
		date := start.AddDate(0, 0, i).Format(types.DateLayout)

		attractions := make([]types.Attraction, 0, 2)
		for j := 0; j < 2; j++ {
			attractions = append(attractions, types.Attraction{
				Name:    fmt.Sprintf("%s景点%d", req.City, j+1),
				Address: req.City + "市",
				Location: types.Location{
					Longitude: 116.4 + float64(i)*0.01 + float64(j)*0.005,
					Latitude:  39.9 + float64(i)*0.01 + float64(j)*0.005,
				},
				VisitDuration: 120,
				Description:   fmt.Sprintf("这是%s的著名景点", req.City),
				Category:      "景点",
			})
		}

		days = append(days, types.DayPlan{
			Date:           date,
			DayIndex:       i,
			Description:    fmt.Sprintf("第%d天行程", i+1),
			Transportation: req.Transportation,
			Accommodation:  req.Accommodation,
			Attractions:    attractions,
			Meals: []types.Meal{
				{Type: types.MealBreakfast, Name: fmt.Sprintf("第%d天早餐", i+1), Description: "当地特色早餐"},
				{Type: types.MealLunch, Name: fmt.Sprintf("第%d天午餐", i+1), Description: "午餐推荐"},
				{Type: types.MealDinner, Name: fmt.Sprintf("第%d天晚餐", i+1), Description: "晚餐推荐"},
			},
		})
	}

	return types.TripPlan{
		City:        req.City,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
		WeatherInfo: []types.WeatherInfo{},
		OverallSuggestions: fmt.Sprintf(
			"这是为您规划的%s%d日游行程,建议提前查看各景点的开放时间。",
			req.City, req.TravelDays),
	}
}
