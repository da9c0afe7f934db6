package dto

import (
	"encoding/json"
	"fmt"

	"github.com/foodtruck-service/internal/domain"
)

// SearchRequest - поиск по произвольному ключу снапшота
type SearchRequest struct {
	Key   string `json:"key" query:"key" validate:"required"`
	Value string `json:"value" query:"value" validate:"required"`
}

// BestTruckRequest - координаты пользователя
type BestTruckRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ItemList - список блюд; принимает массив строк или одну строку
type ItemList []string

func (l *ItemList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("foodItems must be a string or an array of strings")
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = ItemList{single}
	return nil
}

// AddTruckRequest - тело POST /api/add-truck, все поля обязательны
type AddTruckRequest struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	FacilityType string   `json:"facilityType" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	FoodItems    ItemList `json:"foodItems" validate:"required"`
	ExpiryDate   string   `json:"expiryDate" validate:"required"`
	Status       string   `json:"status" validate:"required"`
}

// ToDomain переводит запрос в запись таблицы
func (r AddTruckRequest) ToDomain() domain.Vendor {
	items := make([]string, len(r.FoodItems))
	copy(items, r.FoodItems)
	return domain.Vendor{
		ID:           r.ID,
		Name:         r.Name,
		FacilityType: r.FacilityType,
		Address:      r.Address,
		FoodItems:    items,
		ExpiryDate:   r.ExpiryDate,
		Status:       r.Status,
	}
}
