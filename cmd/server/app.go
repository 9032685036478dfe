package main

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/foglight/battlesolitaire/internal/api"
	"github.com/foglight/battlesolitaire/internal/controller"
	"github.com/foglight/battlesolitaire/internal/env"
	"github.com/foglight/battlesolitaire/internal/server"
	"github.com/foglight/battlesolitaire/internal/service"
)

// Application wires the puzzle session HTTP API together and serves it.
type Application struct {
	E      *echo.Echo
	cfg    *env.Config
	ctrl   *controller.AppController
	limits *server.GuessRateLimiter
}

// Setup builds the Echo instance, routes, and middleware stack.
func (a *Application) Setup() {
	cfg, err := env.LoadServerConfig()
	if err != nil {
		panic(err)
	}
	a.cfg = cfg

	notifier := service.NewNotificationService()
	auth := service.NewIdentityService(cfg.JWTSecret)
	lobby := service.NewMemoryService(notifier, auth)
	lobby.Configure(cfg.PuzzleWidth, cfg.PuzzleHeight, cfg.PuzzleResolution, cfg.PuzzleSeed)
	a.ctrl = controller.NewAppController(auth, lobby, lobby, notifier)
	a.limits = server.NewGuessRateLimiter(cfg.RateLimit, cfg.RateLimit)

	a.E = echo.New()
	a.E.Use(middleware.Recover())
	a.E.Use(middleware.Logger())

	h := api.NewEchoHandler(a.ctrl)

	a.E.POST("/login", h.Login)

	authed := a.E.Group("")
	authed.Use(echojwt.JWT([]byte(cfg.JWTSecret)))
	authed.Use(server.RequirePlayerIdentity)

	authed.GET("/sessions", h.ListSessions)
	authed.POST("/sessions", h.HostSession)
	authed.POST("/sessions/:id/join", h.JoinSession)
	authed.GET("/sessions/:id", h.GetState)
	authed.POST("/sessions/:id/guess", h.Guess, a.limits.Middleware)
}

// Run starts the HTTP server, blocking until it exits.
func (a *Application) Run() error {
	a.Setup()
	return a.E.Start(":" + a.cfg.Port)
}
