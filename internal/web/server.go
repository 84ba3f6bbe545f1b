package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/martijn/userhub/internal/api/middleware"
	"github.com/martijn/userhub/internal/core/service"
	"github.com/martijn/userhub/pkg/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates the server-rendered UI server
func NewServer(cfg *config.Config, userService *service.UserService) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())

	// Flash messages live in a cookie session so they survive the redirect
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router.Use(sessions.Sessions("userhub_session", store))

	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")))

	h := NewHandler(userService, cfg.PageSize)

	router.GET("/", h.Index)
	router.POST("/user/add", h.AddUser)
	router.POST("/user/update/:id", h.UpdateUser)
	router.GET("/user/delete/:id", h.DeleteUser)

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.WebHost, s.config.WebPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting web server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
