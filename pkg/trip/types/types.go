package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Location is a WGS-84 point in degrees.
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// TripRequest is the immutable planning input.
type TripRequest struct {
	City           string   `json:"city"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	TravelDays     int      `json:"travel_days"`
	Transportation string   `json:"transportation"`
	Accommodation  string   `json:"accommodation"`
	Preferences    []string `json:"preferences"`
	FreeTextInput  string   `json:"free_text_input,omitempty"`
}

// Normalize validates the request and derives TravelDays from the date
// range when the caller did not provide it.
func (r *TripRequest) Normalize() error {
	if strings.TrimSpace(r.City) == "" {
		return errors.New("city is required")
	}
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("bad start_date: %w", err)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("bad end_date: %w", err)
	}
	if end.Before(start) {
		return errors.New("end_date is before start_date")
	}
	if r.TravelDays <= 0 {
		r.TravelDays = int(end.Sub(start).Hours()/24) + 1
	}
	return nil
}

type Attraction struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Location      Location `json:"location"`
	VisitDuration int      `json:"visit_duration"` // minutes
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	TicketPrice   *float64 `json:"ticket_price,omitempty"`
}

type Hotel struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Location      Location `json:"location"`
	PriceRange    string   `json:"price_range"`
	Rating        string   `json:"rating"`
	Distance      string   `json:"distance"`
	Type          string   `json:"type"`
	EstimatedCost float64  `json:"estimated_cost"`
}

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

type Meal struct {
	Type          string   `json:"type"` // breakfast|lunch|dinner
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

type WeatherInfo struct {
	Date          string  `json:"date"`
	DayWeather    string  `json:"day_weather"`
	NightWeather  string  `json:"night_weather"`
	DayTemp       float64 `json:"day_temp"`
	NightTemp     float64 `json:"night_temp"`
	WindDirection string  `json:"wind_direction"`
	WindPower     string  `json:"wind_power"`
}

type DayPlan struct {
	Date           string       `json:"date"`
	DayIndex       int          `json:"day_index"`
	Description    string       `json:"description"`
	Transportation string       `json:"transportation"`
	Accommodation  string       `json:"accommodation"`
	Hotel          *Hotel       `json:"hotel,omitempty"`
	Attractions    []Attraction `json:"attractions"`
	Meals          []Meal       `json:"meals"`
}

type Budget struct {
	TotalAttractions    float64 `json:"total_attractions"`
	TotalHotels         float64 `json:"total_hotels"`
	TotalMeals          float64 `json:"total_meals"`
	TotalTransportation float64 `json:"total_transportation"`
	Total               float64 `json:"total"`
}

// TripPlan is the planning output. It is built once and never mutated.
type TripPlan struct {
	City               string        `json:"city"`
	StartDate          string        `json:"start_date"`
	EndDate            string        `json:"end_date"`
	Days               []DayPlan     `json:"days"`
	WeatherInfo        []WeatherInfo `json:"weather_info"`
	OverallSuggestions string        `json:"overall_suggestions"`
	Budget             *Budget       `json:"budget,omitempty"`
}

// Validate checks the fields a decoded plan must carry. Day and meal counts
// are requested from the planner by prompt, not enforced here.
func (p *TripPlan) Validate() error {
	if p.City == "" {
		return errors.New("plan missing city")
	}
	if p.StartDate == "" || p.EndDate == "" {
		return errors.New("plan missing date range")
	}
	if len(p.Days) == 0 {
		return errors.New("plan has no days")
	}
	for i, d := range p.Days {
		if d.Date == "" {
			return fmt.Errorf("day %d missing date", i)
		}
		for _, m := range d.Meals {
			switch m.Type {
			case MealBreakfast, MealLunch, MealDinner:
			default:
				return fmt.Errorf("day %d has unknown meal type %q", i, m.Type)
			}
		}
	}
	return nil
}

type TripPlanResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *TripPlan `json:"data"`
}

type TripHistoryItem struct {
	ID           string       `json:"id"`
	RequestData  *TripRequest `json:"request_data"`
	ResponseData *TripPlan    `json:"response_data"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type TripHistoryResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []TripHistoryItem `json:"data"`
}
