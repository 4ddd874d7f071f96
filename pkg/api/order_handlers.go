package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/pkg/schema"
	"onyxtaxi/service"
	"onyxtaxi/storage"
)

type OrderHandler struct {
	schemas *schema.Registry
	svc     service.OrderService
	log     logger.ILogger
}

func NewOrderHandler(schemas *schema.Registry, svc service.OrderService, log logger.ILogger) *OrderHandler {
	return &OrderHandler{schemas: schemas, svc: svc, log: log}
}

// validateOrder runs the contract check and, on success, maps the payload to
// a model. The schema has already pinned the field types, so the casts
// cannot lose information; only the timestamp needs a real parse.
func (h *OrderHandler) validateOrder(c *gin.Context) (*models.Order, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, msgBadRequest)
		return nil, false
	}
	payload, ok := decodeObject(raw)
	if !ok {
		c.String(http.StatusBadRequest, msgBadRequest)
		return nil, false
	}

	violation, err := h.schemas.Validate(schema.KindOrders, raw)
	if err != nil {
		h.log.Error("order schema check failed", logger.Error(err))
		c.String(http.StatusInternalServerError, msgInternal)
		return nil, false
	}
	if violation != nil {
		c.String(http.StatusUnsupportedMediaType, violation.Error())
		return nil, false
	}

	dateCreated, err := time.Parse(time.RFC3339, cast.ToString(payload["date_created"]))
	if err != nil {
		c.String(http.StatusUnsupportedMediaType, "date_created: must be a date-time")
		return nil, false
	}

	return &models.Order{
		AddressFrom: cast.ToString(payload["address_from"]),
		AddressTo:   cast.ToString(payload["address_to"]),
		ClientID:    cast.ToInt64(payload["client_id"]),
		DriverID:    cast.ToInt64(payload["driver_id"]),
		DateCreated: dateCreated,
		Status:      cast.ToString(payload["status"]),
	}, true
}

func (h *OrderHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		// client_id and driver_id are only type-checked; whether they point
		// at existing rows is not verified here.
		order, ok := h.validateOrder(c)
		if !ok {
			return
		}

		created, err := h.svc.Create(c.Request.Context(), order)
		if err != nil {
			h.log.Error("failed to create order", logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *OrderHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseRecordID(c.Query("order_id"), false)
		if !ok {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}

		order, err := h.svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.String(http.StatusNotFound, msgNotFound)
				return
			}
			h.log.Error("failed to get order", logger.Int64("id", id), logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (h *OrderHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseRecordID(c.Param("id"), false)
		if !ok {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}

		// Known gap: any of the four statuses is accepted regardless of the
		// order's current one, so a done order can regress to not_accepted.
		// Kept permissive on purpose until product intent says otherwise.
		order, ok := h.validateOrder(c)
		if !ok {
			return
		}

		updated, err := h.svc.Update(c.Request.Context(), id, order)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.String(http.StatusNotFound, msgNotFound)
				return
			}
			h.log.Error("failed to update order", logger.Int64("id", id), logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
