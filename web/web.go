// Package web assembles the ttcloud HTTP server: routing, session store,
// middleware and background jobs.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"ttcloud/config"
	"ttcloud/database"
	"ttcloud/logger"
	"ttcloud/util/common"
	"ttcloud/web/controller"
	"ttcloud/web/entity"
	"ttcloud/web/job"
	"ttcloud/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// sessionMaxAge is the cookie and session record time-to-live.
const sessionMaxAge = 24 * 60 * 60

// Server is the ttcloud web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth *controller.AuthController
	api  *controller.APIController
	page *controller.PageController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware, the database-backed
// cookie-session store and the controllers, and returns the engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.RequestId())

	// gzip, excluding the API path to avoid double-compressing JSON
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/"}),
	))

	// Sessions persist in the sqlite database alongside users and uploads.
	store := gormsessions.NewStore(database.GetDB(), false, []byte(config.GetCookieSecret()))
	store.Options(sessions.Options{
		Path:     "/",
		Domain:   config.GetCookieDomain(),
		MaxAge:   sessionMaxAge,
		Secure:   config.IsProduction(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions(config.GetCookieName(), store))

	api := engine.Group("/api")
	s.auth = controller.NewAuthController(api)
	s.api = controller.NewAPIController(api)

	s.page = controller.NewPageController(&engine.RouterGroup)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.NotFoundMsg{
			Status:  http.StatusNotFound,
			Message: "Cannot find the page or route you're looking for!",
		})
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	// Expired session records are swept every 15 minutes.
	s.cron.AddJob("@every 15m", job.NewClearSessionsJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	s.cron = cron.New()
	s.cron.Start()
	s.startTask()

	listenAddr := net.JoinHostPort("", strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
