package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"promptrouter/internal/config"
	"promptrouter/internal/router"
	"promptrouter/internal/services"
)

// App ties configuration, logging and the router service together. Built
// once per invocation and handed to the commands via the cobra context.
type App struct {
	Config        *config.Config
	RouterService *services.RouterService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initLogging(); err != nil {
		return nil, err
	}
	if err := app.initRouter(); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) initLogging() error {
	level := a.Config.Log.Level
	if level == "" {
		level = "info"
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	log.SetLevel(parsed)
	return nil
}

func (a *App) initRouter() error {
	var extra map[router.SetName][]string
	if len(a.Config.Router.ExtraKeywords) > 0 {
		extra = make(map[router.SetName][]string, len(a.Config.Router.ExtraKeywords))
		for name, terms := range a.Config.Router.ExtraKeywords {
			extra[router.SetName(name)] = terms
		}
	}

	r, err := router.New(extra)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}
	a.RouterService = services.NewRouterService(r)
	return nil
}
