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

type ClientHandler struct {
	schemas *schema.Registry
	svc     service.ClientService
	log     logger.ILogger
}

func NewClientHandler(schemas *schema.Registry, svc service.ClientService, log logger.ILogger) *ClientHandler {
	return &ClientHandler{schemas: schemas, svc: svc, log: log}
}

func (h *ClientHandler) Create() gin.HandlerFunc {
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

		violation, err := h.schemas.Validate(schema.KindClients, raw)
		if err != nil {
			h.log.Error("client schema check failed", logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		if violation != nil {
			c.String(http.StatusUnsupportedMediaType, violation.Error())
			return
		}

		client := &models.Client{
			Name:  cast.ToString(payload["name"]),
			IsVIP: cast.ToBool(payload["is_vip"]),
		}

		created, err := h.svc.Create(c.Request.Context(), client)
		if err != nil {
			h.log.Error("failed to create client", logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *ClientHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseRecordID(c.Query("client_id"), true)
		if !ok {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}

		client, err := h.svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.String(http.StatusNotFound, msgNotFound)
				return
			}
			h.log.Error("failed to get client", logger.Int64("id", id), logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func (h *ClientHandler) Delete() gin.HandlerFunc {
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
			h.log.Error("failed to delete client", logger.Int64("id", id), logger.Error(err))
			c.String(http.StatusInternalServerError, msgInternal)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}
