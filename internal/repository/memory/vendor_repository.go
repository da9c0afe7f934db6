package memory

import (
	"context"
	"sync"

	"github.com/foodtruck-service/internal/domain"
	"github.com/foodtruck-service/internal/domain/repository"
)

// vendorRepository хранит таблицу в памяти процесса.
// Поиск и запись выполняются под одним мьютексом, поэтому на ID
// приходится не больше одной записи даже при параллельных запросах.
type vendorRepository struct {
	mu      sync.Mutex
	vendors []domain.Vendor
}

// NewVendorRepository создаёт пустую таблицу
func NewVendorRepository() repository.VendorRepository {
	return &vendorRepository{}
}

func (r *vendorRepository) Upsert(ctx context.Context, vendor domain.Vendor) (domain.UpsertOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	vendor.FoodItems = cloneItems(vendor.FoodItems)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vendors {
		if r.vendors[i].ID == vendor.ID {
			r.vendors[i] = vendor
			return domain.OutcomeUpdated, nil
		}
	}

	r.vendors = append(r.vendors, vendor)
	return domain.OutcomeCreated, nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vendors {
		if r.vendors[i].ID == id {
			v := r.vendors[i]
			v.FoodItems = cloneItems(v.FoodItems)
			return &v, nil
		}
	}
	return nil, nil
}

func (r *vendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Vendor, len(r.vendors))
	for i, v := range r.vendors {
		v.FoodItems = cloneItems(v.FoodItems)
		result[i] = v
	}
	return result, nil
}

func cloneItems(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
