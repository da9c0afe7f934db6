package repository

import (
	"context"

	"github.com/foodtruck-service/internal/domain"
)

// SnapshotRepository отдаёт снапшот точек интереса.
// Каждый вызов читает источник заново, кеша нет.
type SnapshotRepository interface {
	Load(ctx context.Context) (*domain.Node, error)
}
