package dto

import (
	"github.com/foodtruck-service/internal/domain"
)

// BestTruckResponse - ближайший одобренный фудтрак и расстояние до него
type BestTruckResponse struct {
	Truck      *domain.Node `json:"truck"`
	DistanceKm float64      `json:"distance_km"`
}

// AddTruckResponse - результат upsert
type AddTruckResponse struct {
	Outcome domain.UpsertOutcome `json:"outcome"`
	Vendor  domain.Vendor        `json:"vendor"`
}

// Message - текст ответа для клиента: "added" или "updated"
func (r AddTruckResponse) Message() string {
	if r.Outcome == domain.OutcomeUpdated {
		return "updated"
	}
	return "added"
}
