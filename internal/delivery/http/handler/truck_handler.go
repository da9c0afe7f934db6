package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/pkg/utils"
	"github.com/foodtruck-service/internal/pkg/validator"
	"github.com/foodtruck-service/internal/usecase"
	"github.com/foodtruck-service/internal/usecase/dto"
)

// HeaderDistanceKm - расстояние до найденного фудтрака в километрах
const HeaderDistanceKm = "X-Distance-Km"

// TruckHandler - обработчик запросов по фудтракам
type TruckHandler struct {
	truckUC  *usecase.TruckUseCase
	vendorUC *usecase.VendorUseCase
	logger   *zap.Logger
}

// NewTruckHandler - создание нового TruckHandler
func NewTruckHandler(truckUC *usecase.TruckUseCase, vendorUC *usecase.VendorUseCase, logger *zap.Logger) *TruckHandler {
	return &TruckHandler{
		truckUC:  truckUC,
		vendorUC: vendorUC,
		logger:   logger,
	}
}

// BestTruck godoc
// @Summary Ближайший одобренный фудтрак
// @Description Возвращает запись снапшота со Status approved, ближайшую к точке пользователя (haversine)
// @Tags Trucks
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} object
// @Header 200 {string} X-Distance-Km "Расстояние в километрах"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/best-truck [get]
func (h *TruckHandler) BestTruck(c *fiber.Ctx) error {
	lat := utils.ParseDecimalPrefix(c.Query("lat"))
	lon := utils.ParseDecimalPrefix(c.Query("lon"))
	if !utils.IsFiniteCoordinate(lat, lon) {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.truckUC.FindBest(c.Context(), dto.BestTruckRequest{Lat: lat, Lon: lon})
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(HeaderDistanceKm, strconv.FormatFloat(result.DistanceKm, 'f', 6, 64))
	return c.JSON(result.Truck)
}

// AddTruck godoc
// @Summary Добавление или обновление фудтрака
// @Description Upsert в таблицу в памяти по id; запись с тем же id заменяется целиком
// @Tags Trucks
// @Accept json
// @Produce json
// @Param request body dto.AddTruckRequest true "Фудтрак"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/add-truck [post]
func (h *TruckHandler) AddTruck(c *fiber.Ctx) error {
	var req dto.AddTruckRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	if err := validator.ValidateRequest(&req, errors.ErrMissingTruckFields); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.vendorUC.AddTruck(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, result.Message())
}

// ListTrucks godoc
// @Summary Список фудтраков из таблицы
// @Tags Trucks
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Vendor}
// @Router /api/trucks [get]
func (h *TruckHandler) ListTrucks(c *fiber.Ctx) error {
	vendors, err := h.vendorUC.ListTrucks(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, vendors, &utils.Meta{
		Total: len(vendors),
	})
}

// GetTruck godoc
// @Summary Фудтрак из таблицы по id
// @Tags Trucks
// @Produce json
// @Param id path string true "ID фудтрака"
// @Success 200 {object} utils.SuccessResponse{data=domain.Vendor}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/trucks/{id} [get]
func (h *TruckHandler) GetTruck(c *fiber.Ctx) error {
	vendor, err := h.vendorUC.GetTruck(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, vendor, nil)
}
