package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sorarelay/internal/entity"
	"sorarelay/internal/service"
)

// Server exposes the dispatch and endpoint-admin API over HTTP.
type Server struct {
	log       *slog.Logger
	addr      string
	sharedKey string
	shutdownT time.Duration
	disp      Dispatcher
	admin     EndpointAdmin
	cache     CacheInvalidator
	engine    *gin.Engine
}

// NewServer wires the routes. admin may be nil when the endpoint source
// is read-only (file-backed deployments); the admin routes are then not
// registered.
func NewServer(log *slog.Logger, addr, sharedKey string, shutdown time.Duration, disp Dispatcher, admin EndpointAdmin, cache CacheInvalidator) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		log:       log,
		addr:      addr,
		sharedKey: sharedKey,
		shutdownT: shutdown,
		disp:      disp,
		admin:     admin,
		cache:     cache,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1", s.requireSharedKey)
	v1.POST("/tasks", s.handleCreateTask)
	if s.admin != nil {
		v1.GET("/endpoints", s.handleListEndpoints)
		v1.POST("/endpoints", s.handleAddEndpoint)
		v1.PATCH("/endpoints/:id", s.handleUpdateEndpoint)
	}
	return r
}

// requireSharedKey gates every /v1 route before any core logic runs. An
// empty configured key disables the gate.
func (s *Server) requireSharedKey(c *gin.Context) {
	if s.sharedKey != "" && c.GetHeader("x-relay-key") != s.sharedKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid relay key"})
		return
	}
	c.Next()
}

type createTaskRequest struct {
	AccessToken string         `json:"access_token"`
	Payload     map[string]any `json:"payload"`
	UserAgent   string         `json:"user_agent"`
	Flow        string         `json:"flow"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.AccessToken == "" || len(req.Payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "access_token and payload required"})
		return
	}
	res, err := s.disp.Dispatch(c.Request.Context(), entity.DispatchRequest{
		AccessToken: req.AccessToken,
		Payload:     req.Payload,
		UserAgent:   req.UserAgent,
		Flow:        req.Flow,
	})
	if err != nil {
		s.writeDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task_id": res.TaskID})
}

func (s *Server) writeDispatchError(c *gin.Context, err error) {
	var upstream *entity.UpstreamError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &upstream):
		// Transparent proxying: the verification endpoint's reply goes
		// back unchanged.
		c.Data(upstream.StatusCode, "application/json", upstream.Body)
	case errors.Is(err, service.ErrRelayDisabled), errors.Is(err, service.ErrNoUsableEndpoint):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func (s *Server) handleListEndpoints(c *gin.Context) {
	rows, err := s.admin.ListEndpointConfigs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]gin.H, 0, len(rows))
	for _, ep := range rows {
		items = append(items, gin.H{
			"id":      ep.ID,
			"url":     ep.URL,
			"enabled": ep.Enabled,
			"key_set": ep.APIKey != "",
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "endpoints": items})
}

func (s *Server) handleAddEndpoint(c *gin.Context) {
	var req struct {
		URL     string `json:"url"`
		APIKey  string `json:"api_key"`
		Enabled *bool  `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	id, err := s.admin.AddEndpoint(c.Request.Context(), strings.TrimSpace(req.URL), req.APIKey, enabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.cache.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (s *Server) handleUpdateEndpoint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endpoint id"})
		return
	}
	var req struct {
		Enabled *bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled required"})
		return
	}
	if err := s.admin.SetEndpointEnabled(c.Request.Context(), id, *req.Enabled); err != nil {
		if errors.Is(err, entity.ErrEndpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.cache.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Run serves until ctx is cancelled, then drains connections within the
// shutdown window.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	s.log.Info("server started", "addr", s.addr)

	select {
	case <-ctx.Done():
		s.log.Info("shutdown: draining connections")
		shutCtx, cancel := context.WithTimeout(context.Background(), s.shutdownT)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			s.log.Warn("shutdown: force-close remaining connections", "err", err)
			_ = srv.Close()
		}
		return nil
	case err := <-errCh:
		return err
	}
}
