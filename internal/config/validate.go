package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	switch c.Server.Mode {
	case ModeProduction:
		if strings.TrimSpace(c.Server.ProductionHost) == "" {
			return errors.New("server.production_host must be set when server.mode is production")
		}
	case ModeDevelopment:
		if strings.TrimSpace(c.Server.Host) == "" {
			return errors.New("server.host must be set")
		}
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
		}
	default:
		return fmt.Errorf("server.mode must be %q or %q, got %q", ModeProduction, ModeDevelopment, c.Server.Mode)
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("server.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}
