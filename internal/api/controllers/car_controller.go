package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/models/request_models"
	"carlink/internal/services"
	"carlink/pkg/utils"
)

type CarController struct {
	carService services.CarServiceInterface
}

func NewCarController(carService services.CarServiceInterface) *CarController {
	return &CarController{
		carService: carService,
	}
}

// SearchCars godoc
// @Summary Search cars, optionally for a date range
// @Description With start_date and end_date the result excludes booked cars and carries a price quote
// @Tags Cars
// @Produce json
// @Param city query string false "City"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /cars [get]
func (cc *CarController) SearchCars(c *gin.Context) {
	var query request_models.SearchCarsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	input := services.CarSearchInput{
		City:     query.City,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.StartDate != "" || query.EndDate != "" {
		start, err := parseDate(query.StartDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		end, err := parseDate(query.EndDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		input.Start = &start
		input.End = &end
	}

	cars, err := cc.carService.SearchCars(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cars, "")
}

// GetCar godoc
// @Summary Get one car, optionally priced for a date range
// @Tags Cars
// @Produce json
// @Param id path string true "Car ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Router /cars/{id} [get]
func (cc *CarController) GetCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid car id")
		return
	}

	var start, end *time.Time
	if raw := c.Query("start_date"); raw != "" {
		s, err := parseDate(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		start = &s
	}
	if raw := c.Query("end_date"); raw != "" {
		e, err := parseDate(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		end = &e
	}

	car, err := cc.carService.GetCar(c.Request.Context(), carID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, car, "")
}

// CreateCar godoc
// @Summary List a car for rent
// @Tags Cars
// @Accept json
// @Produce json
// @Param request body request_models.CreateCarRequest true "Car payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars [post]
func (cc *CarController) CreateCar(c *gin.Context) {
	var req request_models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	makeID, err := uuid.Parse(req.CarMakeID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid car_make_id")
		return
	}
	modelID, err := uuid.Parse(req.CarModelID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid car_model_id")
		return
	}

	car := &db_models.Car{
		CarMakeID:           makeID,
		CarModelID:          modelID,
		Year:                req.Year,
		Plate:               req.Plate,
		DailyRateMinor:      req.DailyRateMinor,
		Currency:            req.Currency,
		WithDriverAvailable: req.WithDriverAvailable,
		City:                req.City,
		Address:             req.Address,
		Active:              true,
	}

	created, err := cc.carService.CreateCar(c.Request.Context(), callerCtx, car)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": created.ID.String()}, "Car listed")
}

// UpdateCar godoc
// @Summary Update a car listing (owner or admin)
// @Tags Cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body request_models.UpdateCarRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars/{id} [put]
func (cc *CarController) UpdateCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid car id")
		return
	}

	var req request_models.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	car, err := cc.carService.UpdateCar(c.Request.Context(), callerCtx, carID, services.UpdateCarInput{
		DailyRateMinor:      req.DailyRateMinor,
		WithDriverAvailable: req.WithDriverAvailable,
		City:                req.City,
		Address:             req.Address,
		Active:              req.Active,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": car.ID.String()}, "Car updated")
}

// ListMakes godoc
// @Summary List car makes with their models
// @Tags Cars
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cars/makes [get]
func (cc *CarController) ListMakes(c *gin.Context) {
	makes, err := cc.carService.ListMakes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, makes, "")
}

// CreateMake godoc
// @Summary Create a car make (admin)
// @Tags Cars
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars/makes [post]
func (cc *CarController) CreateMake(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	carMake, err := cc.carService.CreateMake(c.Request.Context(), callerCtx, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": carMake.ID.String()}, "Make created")
}

// CreateModel godoc
// @Summary Create a car model under a make (admin)
// @Tags Cars
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars/models [post]
func (cc *CarController) CreateModel(c *gin.Context) {
	var req struct {
		CarMakeID string `json:"car_make_id" binding:"required,uuid"`
		Name      string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	makeID, err := uuid.Parse(req.CarMakeID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid car_make_id")
		return
	}

	carModel, err := cc.carService.CreateModel(c.Request.Context(), callerCtx, makeID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": carModel.ID.String()}, "Model created")
}
