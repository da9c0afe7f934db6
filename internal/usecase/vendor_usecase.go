package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/domain"
	"github.com/foodtruck-service/internal/domain/repository"
	"github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/usecase/dto"
)

const publishTimeout = 2 * time.Second

// VendorUseCase - upsert и чтение таблицы фудтраков
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
	streamRepo repository.StreamRepository
	stream     string
	logger     *zap.Logger
	now        func() time.Time
}

// NewVendorUseCase - создание нового VendorUseCase.
// streamRepo может быть nil, тогда события не публикуются.
func NewVendorUseCase(
	vendorRepo repository.VendorRepository,
	streamRepo repository.StreamRepository,
	stream string,
	logger *zap.Logger,
) *VendorUseCase {
	return &VendorUseCase{
		vendorRepo: vendorRepo,
		streamRepo: streamRepo,
		stream:     stream,
		logger:     logger,
		now:        time.Now,
	}
}

// AddTruck добавляет фудтрак или целиком заменяет запись с тем же ID
func (uc *VendorUseCase) AddTruck(ctx context.Context, req dto.AddTruckRequest) (*dto.AddTruckResponse, error) {
	vendor := req.ToDomain()

	outcome, err := uc.vendorRepo.Upsert(ctx, vendor)
	if err != nil {
		uc.logger.Error("Failed to upsert vendor", zap.String("id", vendor.ID), zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	uc.logger.Info("Vendor stored",
		zap.String("id", vendor.ID),
		zap.String("outcome", string(outcome)))

	uc.publish(ctx, vendor, outcome)

	return &dto.AddTruckResponse{
		Outcome: outcome,
		Vendor:  vendor,
	}, nil
}

// GetTruck возвращает запись таблицы по ID
func (uc *VendorUseCase) GetTruck(ctx context.Context, id string) (*domain.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get vendor", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}
	if vendor == nil {
		return nil, errors.ErrTruckNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}
	return vendor, nil
}

// ListTrucks возвращает все записи таблицы
func (uc *VendorUseCase) ListTrucks(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := uc.vendorRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list vendors", zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}
	return vendors, nil
}

// publish отправляет событие в стрим; ошибка только логируется
func (uc *VendorUseCase) publish(ctx context.Context, vendor domain.Vendor, outcome domain.UpsertOutcome) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.NewVendorEvent(vendor, outcome, uc.now())

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := uc.streamRepo.PublishToStream(pubCtx, uc.stream, event); err != nil {
		uc.logger.Warn("Failed to publish vendor event",
			zap.String("id", vendor.ID),
			zap.String("event_id", event.EventID.String()),
			zap.Error(err))
	}
}
