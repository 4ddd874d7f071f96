// Package api exposes the record-management HTTP surface: create/read/delete
// for drivers and clients, create/read/update for orders.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onyxtaxi/config"
	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/pkg/schema"
	"onyxtaxi/service"
)

const (
	msgBadRequest = "Bad request"
	msgNotFound   = "Not found"
	msgInternal   = "Internal Server Error"
)

type Server struct {
	engine *gin.Engine
	http   *http.Server
}

func New(cfg config.Config, schemas *schema.Registry, svc service.IServiceManager, log logger.ILogger) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	drivers := NewDriverHandler(schemas, svc.Driver(), log)
	clients := NewClientHandler(schemas, svc.Client(), log)
	orders := NewOrderHandler(schemas, svc.Order(), log)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Onyx.Taxi!")
	})

	r.POST("/drivers", drivers.Create())
	r.GET("/drivers", drivers.Get())
	r.DELETE("/drivers/:id", drivers.Delete())

	r.POST("/clients", clients.Create())
	r.GET("/clients", clients.Get())
	r.DELETE("/clients/:id", clients.Delete())

	r.POST("/orders", orders.Create())
	r.GET("/orders", orders.Get())
	r.PUT("/orders/:id", orders.Update())

	return &Server{
		engine: r,
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.AppPort),
			Handler: r,
		},
	}
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// decodeObject turns a raw body into the key/value form the schemas are
// checked against. Anything that is not a JSON object counts as a malformed
// request, not a schema violation.
func decodeObject(raw []byte) (map[string]interface{}, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

// parseRecordID parses an identifier from the path or query. The reserved
// placeholder id is rejected here, before any transaction is opened: the
// placeholder rows model "unassigned" foreign keys and are not addressable.
func parseRecordID(raw string, protected bool) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	if protected && id == models.UnassignedID {
		return 0, false
	}
	return id, true
}
