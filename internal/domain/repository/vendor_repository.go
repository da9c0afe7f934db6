package repository

import (
	"context"

	"github.com/foodtruck-service/internal/domain"
)

// VendorRepository - таблица фудтраков с ключом по ID
type VendorRepository interface {
	// Upsert заменяет запись с тем же ID или добавляет новую
	Upsert(ctx context.Context, vendor domain.Vendor) (domain.UpsertOutcome, error)

	// GetByID возвращает nil, nil если записи нет
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)

	// List возвращает копию записей в порядке добавления
	List(ctx context.Context) ([]domain.Vendor, error)
}
