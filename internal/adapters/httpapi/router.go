package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dojocrm/internal/ports/input"
	"dojocrm/internal/ports/output"
)

// RouterConfig carries everything the HTTP layer needs from the outside.
type RouterConfig struct {
	Checkins    input.CheckinUseCase
	Events      input.EventUseCase
	Students    input.StudentUseCase
	Leads       input.LeadUseCase
	Translator  output.T
	CORSOrigins []string

	// PingStorage reports whether the storage engine is reachable.
	// Optional; /health reports liveness only when nil.
	PingStorage func(ctx context.Context) error
}

// NewRouter wires all API routes under /api/v1.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Accept-Language")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		if cfg.PingStorage != nil {
			if err := cfg.PingStorage(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	checkins := NewCheckinHandler(cfg.Checkins, cfg.Translator)
	events := NewEventHandler(cfg.Events)
	students := NewStudentHandler(cfg.Students)
	leads := NewLeadHandler(cfg.Leads, cfg.Translator)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/checkins", checkins.CheckIn)
		v1.DELETE("/checkins/:id", checkins.Delete)

		v1.POST("/events", events.Create)
		v1.GET("/events", events.List)
		v1.GET("/events/:id", events.Get)
		v1.PUT("/events/:id", events.Update)
		v1.DELETE("/events/:id", events.Delete)
		v1.GET("/events/:id/checkins", checkins.ListByEvent)

		v1.POST("/students", students.Create)
		v1.GET("/students", students.List)
		v1.GET("/students/:id", students.Get)
		v1.PUT("/students/:id", students.Update)
		v1.DELETE("/students/:id", students.Delete)
		v1.GET("/students/:id/checkins", checkins.ListByStudent)

		v1.POST("/leads", leads.Capture)
		v1.GET("/leads", leads.List)
		v1.GET("/leads/:id", leads.Get)
		v1.PATCH("/leads/:id/status", leads.UpdateStatus)
		v1.DELETE("/leads/:id", leads.Delete)
	}

	return r
}
