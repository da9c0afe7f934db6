package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/domain"
	"github.com/foodtruck-service/internal/domain/repository"
	"github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/usecase/dto"
)

// SearchUseCase - поиск записей снапшота по ключу и подстроке
type SearchUseCase struct {
	snapshotRepo repository.SnapshotRepository
	logger       *zap.Logger
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(snapshotRepo repository.SnapshotRepository, logger *zap.Logger) *SearchUseCase {
	return &SearchUseCase{
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

// Search читает свежий снапшот и возвращает все объекты, где поле key
// содержит value без учёта регистра
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]*domain.Node, error) {
	snapshot, err := uc.snapshotRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load snapshot for search", zap.Error(err))
		return nil, errors.ErrSnapshotUnavailable.Wrap(err)
	}

	results := FindByKeyValue(snapshot, req.Key, req.Value)

	uc.logger.Debug("Search completed",
		zap.String("key", req.Key),
		zap.String("value", req.Value),
		zap.Int("matches", len(results)))

	return results, nil
}

// FindByKeyValue обходит структуру в глубину слева направо.
// Объект попадает в результат, если текст его поля key содержит value;
// иначе поиск продолжается по значениям объекта. Дубликаты не убираются,
// отсутствующее поле не совпадает. Результат никогда не nil.
func FindByKeyValue(data *domain.Node, key, value string) []*domain.Node {
	results := []*domain.Node{}
	needle := strings.ToLower(value)

	switch {
	case data.IsSequence():
		results = collectMatches(data.Items, key, needle, results)
	case data.IsObject():
		results = collectMatches(data.Values(), key, needle, results)
	}

	return results
}

func collectMatches(items []*domain.Node, key, needle string, results []*domain.Node) []*domain.Node {
	for _, item := range items {
		switch {
		case item.IsObject():
			if fieldContains(item, key, needle) {
				results = append(results, item)
				continue
			}
			results = collectMatches(item.Values(), key, needle, results)
		case item.IsSequence():
			// у последовательности нет полей, только спускаемся глубже
			results = collectMatches(item.Items, key, needle, results)
		}
	}
	return results
}

func fieldContains(obj *domain.Node, key, needle string) bool {
	v, ok := obj.Get(key)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(v.Text()), needle)
}
