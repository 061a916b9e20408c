package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"promptrouter/internal/router"
)

func (c *Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}

	// Extra keywords may only extend the known sets.
	for name := range c.Router.ExtraKeywords {
		if !knownSet(name) {
			return fmt.Errorf("router.extra_keywords: unknown set %q", name)
		}
	}
	return nil
}

func knownSet(name string) bool {
	for _, s := range router.SetNames {
		if string(s) == name {
			return true
		}
	}
	return false
}
