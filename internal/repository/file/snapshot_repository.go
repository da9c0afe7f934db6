package file

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/domain"
	"github.com/foodtruck-service/internal/domain/repository"
)

type snapshotRepository struct {
	path   string
	logger *zap.Logger
}

// NewSnapshotRepository создаёт репозиторий снапшота поверх JSON файла
func NewSnapshotRepository(path string, logger *zap.Logger) repository.SnapshotRepository {
	return &snapshotRepository{
		path:   path,
		logger: logger,
	}
}

// Load читает и разбирает файл на каждый вызов
func (r *snapshotRepository) Load(ctx context.Context) (*domain.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("Failed to read snapshot file",
			zap.String("path", r.path),
			zap.Error(err))
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	node, err := domain.ParseNode(data)
	if err != nil {
		r.logger.Error("Failed to parse snapshot file",
			zap.String("path", r.path),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return nil, err
	}

	r.logger.Debug("Snapshot loaded",
		zap.String("path", r.path),
		zap.Int("bytes", len(data)),
		zap.String("root", node.Kind.String()),
		zap.Duration("took", time.Since(start)))

	return node, nil
}
