package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/pkg/schema"
	"onyxtaxi/service"
	"onyxtaxi/storage"
)

type DriverHandler struct {
	schemas *schema.Registry
	svc     service.DriverService
	log     logger.ILogger
}

func NewDriverHandler(schemas *schema.Registry, svc service.DriverService, log logger.ILogger) *DriverHandler {
	return &DriverHandler{schemas: schemas, svc: svc, log: log}
}

func (h *DriverHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}
		payload, ok := decodeObject(raw)
		if !ok {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}

		violation, err := h.schemas.Validate(schema.KindDrivers, raw)
		if err != nil {
			h.log.Error("driver schema check failed", logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		if violation != nil {
			c.String(http.StatusUnsupportedMediaType, violation.Error())
			return
		}

		driver := &models.Driver{
			Name: cast.ToString(payload["name"]),
			Car:  cast.ToString(payload["car"]),
		}

		created, err := h.svc.Create(c.Request.Context(), driver)
		if err != nil {
			h.log.Error("failed to create driver", logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *DriverHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseRecordID(c.Query("driver_id"), true)
		if !ok {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}

		driver, err := h.svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.String(http.StatusNotFound, msgNotFound)
				return
			}
			h.log.Error("failed to get driver", logger.Int64("id", id), logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusOK, driver)
	}
}

func (h *DriverHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseRecordID(c.Param("id"), true)
		if !ok {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}

		deleted, err := h.svc.DeleteByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.String(http.StatusNotFound, msgNotFound)
				return
			}
			h.log.Error("failed to delete driver", logger.Int64("id", id), logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}
