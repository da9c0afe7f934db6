package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/pkg/utils"
	"github.com/foodtruck-service/internal/pkg/validator"
	"github.com/foodtruck-service/internal/usecase"
	"github.com/foodtruck-service/internal/usecase/dto"
)

// SearchHandler - обработчик поиска по снапшоту
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск записей по ключу и подстроке
// @Description Обходит снапшот рекурсивно и возвращает объекты, у которых поле key содержит value (без учёта регистра)
// @Tags Search
// @Produce json
// @Param key query string true "Имя поля, например FoodItems"
// @Param value query string true "Подстрока для поиска"
// @Success 200 {array} object
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Key:   c.Query("key"),
		Value: c.Query("value"),
	}

	if err := validator.ValidateRequest(&req, errors.ErrMissingSearchParams); err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(results)
}
