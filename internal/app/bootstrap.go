package app

import (
	"fmt"
	"log"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.Register(f, c.Config, c.DB, c.Cache)

	return &App{Fiber: f}
}

// Bootstrap opens the container and builds the HTTP app. The returned
// closer releases the container's resources.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return New(c, logger), c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
