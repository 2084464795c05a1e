package config

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-default:"prod"`
	Log     LogConfig
	Console ConsoleConfig
}

type LogConfig struct {
	// Level overrides the level derived from Env when set.
	Level string `env:"LOG_LEVEL"`
}

type ConsoleConfig struct {
	Prompt   string `env:"TODO_PROMPT" env-default:"todo> "`
	ShowMenu bool   `env:"TODO_SHOW_MENU" env-default:"true"`
	Color    string `env:"TODO_COLOR" env-default:"auto"`
}
