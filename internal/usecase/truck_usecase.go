package usecase

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/domain"
	"github.com/foodtruck-service/internal/domain/repository"
	"github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/pkg/utils"
	"github.com/foodtruck-service/internal/usecase/dto"
)

const (
	fieldStatus    = "Status"
	fieldLatitude  = "Latitude"
	fieldLongitude = "Longitude"

	statusApproved = "approved"
)

// TruckUseCase - выбор ближайшего одобренного фудтрака по снапшоту
type TruckUseCase struct {
	snapshotRepo repository.SnapshotRepository
	logger       *zap.Logger
}

// NewTruckUseCase - создание нового TruckUseCase
func NewTruckUseCase(snapshotRepo repository.SnapshotRepository, logger *zap.Logger) *TruckUseCase {
	return &TruckUseCase{
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

// FindBest возвращает ближайший к (lat, lon) фудтрак со статусом approved
func (uc *TruckUseCase) FindBest(ctx context.Context, req dto.BestTruckRequest) (*dto.BestTruckResponse, error) {
	snapshot, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load snapshot for nearest search", zap.Error(err))
		return nil, errors.ErrSnapshotUnavailable.Wrap(err)
	}

	truck, distance, ok := FindNearest(req.Lat, req.Lon, snapshot)
	if !ok {
		uc.logger.Info("No approved trucks found",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon))
		return nil, errors.ErrNoApprovedTrucks
	}

	uc.logger.Debug("Nearest approved truck found",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Float64("distance_km", distance))

	return &dto.BestTruckResponse{
		Truck:      truck,
		DistanceKm: distance,
	}, nil
}

// FindNearest ищет запись со Status "approved" (без учёта регистра) с
// минимальным haversine расстоянием. При равенстве выигрывает первая.
// Записи с нечисловыми координатами дают NaN и никогда не выбираются.
func FindNearest(lat, lon float64, records *domain.Node) (*domain.Node, float64, bool) {
	if !records.IsSequence() || len(records.Items) == 0 {
		return nil, 0, false
	}

	var best *domain.Node
	bestDistance := math.Inf(1)

	for _, record := range records.Items {
		if !isApproved(record) {
			continue
		}

		latNode, _ := record.Get(fieldLatitude)
		lonNode, _ := record.Get(fieldLongitude)

		distance := utils.HaversineDistance(lat, lon, latNode.Float(), lonNode.Float())
		if distance < bestDistance {
			best = record
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, 0, false
	}
	return best, bestDistance, true
}

func isApproved(record *domain.Node) bool {
	status, ok := record.Get(fieldStatus)
	if !ok || status.Kind != domain.KindString {
		return false
	}
	return strings.ToLower(status.Str) == statusApproved
}
