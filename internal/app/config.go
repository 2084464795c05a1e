package app

import (
	"fmt"

	// Loads a .env file next to the binary, if present, before the
	// TODO_* variables are read.
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-todo-console/internal/config"
)

// MustReadEnv reads the console configuration from the environment and
// publishes it as the global config.
func MustReadEnv() {
	cfg, err := loadConfig(config.NewEnvReader())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load console config")
		panic(err)
	}

	config.SetGlobal(cfg)
}

func loadConfig(reader config.Reader) (*config.Config, error) {
	cfg, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("load console config: %w", err)
	}

	globalLogger.Info().
		Str("env", cfg.Env).
		Str("log_level", cfg.Log.Level).
		Str("prompt", cfg.Console.Prompt).
		Bool("show_menu", cfg.Console.ShowMenu).
		Str("color", cfg.Console.Color).
		Msg("loaded console config")
	return cfg, nil
}
