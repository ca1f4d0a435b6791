package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/compasscar/internal/domain"
	"github.com/Gunvolt24/compasscar/internal/ports"
	"github.com/Gunvolt24/compasscar/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Сообщения транспортного уровня (тексты — контракт API).
const (
	msgCarNotFound   = "car not found"
	msgInternalError = "an internal server error occurred"
	msgInvalidBody   = "invalid json body"
)

// errorEnvelope — тело любого отказа: упорядоченный непустой список строк.
type errorEnvelope struct {
	Errors []string `json:"errors"`
}

// Handler — HTTP-обработчики поверх CarService.
type Handler struct {
	service ports.CarService
	log     ports.Logger
	timeout time.Duration // бюджет одной операции; <= 0 — без ограничения
}

func NewHandler(service ports.CarService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// opCtx — контекст операции с бюджетом времени обработчика.
func (h *Handler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// respondError — единая классификация отказов в статусы и envelope.
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		vErr *domain.ValidationError
		cErr *domain.ConflictError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorEnvelope{Errors: []string{msgCarNotFound}})
	case errors.As(err, &cErr):
		c.JSON(http.StatusConflict, errorEnvelope{Errors: cErr.Messages})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, errorEnvelope{Errors: vErr.Messages})
	default:
		h.log.Errorf(c.Request.Context(), "request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, errorEnvelope{Errors: []string{msgInternalError}})
	}
}

// createCar — POST /cars.
func (h *Handler) createCar(c *gin.Context) {
	var in domain.NewCar
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope{Errors: []string{msgInvalidBody}})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	car, err := h.service.CreateCar(ctx, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

// listCars — GET /cars.
func (h *Handler) listCars(c *gin.Context) {
	ctx, cancel := h.opCtx(c)
	defer cancel()

	cars, err := h.service.ListCars(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// carWithItemNames — ответ GET /cars/:id: items схлопнуты до имён.
type carWithItemNames struct {
	ID        int64     `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	Items     []string  `json:"items"`
}

// getCar — GET /cars/:id.
func (h *Handler) getCar(c *gin.Context) {
	// Нечисловой id неотличим от несуществующего — тот же 404.
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, errorEnvelope{Errors: []string{msgCarNotFound}})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	car, err := h.service.GetCar(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, carWithItemNames{
		ID:        car.ID,
		Brand:     car.Brand,
		Model:     car.Model,
		Plate:     car.Plate,
		Year:      car.Year,
		CreatedAt: car.CreatedAt,
		Items:     car.ItemNames(),
	})
}

// replaceItems — PUT /cars/:id/items.
func (h *Handler) replaceItems(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, errorEnvelope{Errors: []string{msgCarNotFound}})
		return
	}

	var body struct {
		Items []string `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope{Errors: []string{msgInvalidBody}})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.service.ReplaceItems(ctx, id, body.Items); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// updateCar — PATCH /cars/:id.
func (h *Handler) updateCar(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, errorEnvelope{Errors: []string{msgCarNotFound}})
		return
	}

	var patch domain.CarPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope{Errors: []string{msgInvalidBody}})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.service.UpdateCar(ctx, id, patch); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteCar — DELETE /cars/:id.
func (h *Handler) deleteCar(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, errorEnvelope{Errors: []string{msgCarNotFound}})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.service.DeleteCar(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
