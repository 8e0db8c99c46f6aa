// Package api exposes the intake boundary over HTTP: submission and
// deletion of MTB files, review of staged quality reports, and health.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mtb-intake-service/internal/config"
	"github.com/mtb-intake-service/internal/domain"
	"github.com/mtb-intake-service/internal/service"
)

// HealthProbe reports the reachability of one backing service.
type HealthProbe func(ctx context.Context) error

// Server is the intake HTTP server.
type Server struct {
	cfg    config.ServerConfig
	log    *logrus.Logger
	intake *service.IntakeService
	store  domain.StagingStore
	probes []HealthProbe
	router *gin.Engine
	server *http.Server
}

// NewServer creates the intake HTTP server. Additional health probes
// (e.g. the staging database pool) are consulted by /healthz.
func NewServer(cfg config.ServerConfig, logLevel string, logger *logrus.Logger, intake *service.IntakeService, store domain.StagingStore, probes ...HealthProbe) *Server {
	if logLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(requestLogMiddleware(logger))
	router.Use(rateLimitMiddleware(cfg.RateLimit))

	s := &Server{
		cfg:    cfg,
		log:    logger,
		intake: intake,
		store:  store,
		probes: probes,
		router: router,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	files := s.router.Group("/mtbfile")
	{
		files.POST("", s.handleUpload)
		files.DELETE("/:patient", s.handleDelete)
		files.GET("/:patient/report", s.handleReport)
	}
}

// Handler exposes the router, e.g. for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.log.WithField("addr", addr).Info("Intake server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) handleUpload(c *gin.Context) {
	var file domain.MTBFile
	if err := c.ShouldBindJSON(&file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("malformed MTB file: %v", err)})
		return
	}

	outcome := s.intake.ProcessUpload(c.Request.Context(), &file)
	c.JSON(statusOf(outcome), outcome)
}

func (s *Server) handleDelete(c *gin.Context) {
	patient := domain.PatientID(c.Param("patient"))
	outcome := s.intake.ProcessDelete(c.Request.Context(), patient)
	c.JSON(statusOf(outcome), outcome)
}

func (s *Server) handleReport(c *gin.Context) {
	patient := domain.PatientID(c.Param("patient"))

	report, err := s.store.DataQualityReport(c.Request.Context(), patient)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no staged report for patient"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleHealth(c *gin.Context) {
	if _, err := s.store.MTBFiles(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "staging": err.Error()})
		return
	}
	for _, probe := range s.probes {
		if err := probe(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backend": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusOf maps intake outcomes onto HTTP statuses. Files staged with
// issues are acknowledged as created; fatal data is rejected as
// unprocessable.
func statusOf(outcome service.IntakeOutcome) int {
	switch outcome.Kind {
	case service.OutcomeImported, service.OutcomeDeleted:
		return http.StatusOK
	case service.OutcomeIssuesDetected:
		return http.StatusCreated
	case service.OutcomeInvalidData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
