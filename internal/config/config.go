package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	Game   GameConfig   `mapstructure:"game" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// AuthConfig contains the settings of the per-game access tokens.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// TokenLifetime returns the token lifetime as a duration
func (a AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(a.TokenLifetimeMinutes) * time.Minute
}

// GameConfig contains the game hosting and board timing settings.
type GameConfig struct {
	MaxGames     int           `mapstructure:"max_games" validate:"gt=0"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ReapInterval time.Duration `mapstructure:"reap_interval" validate:"gt=0"`

	SettleDelay   time.Duration `mapstructure:"settle_delay" validate:"gt=0"`
	MatchDelay    time.Duration `mapstructure:"match_delay" validate:"gt=0"`
	MismatchDelay time.Duration `mapstructure:"mismatch_delay" validate:"gt=0"`
	CompleteDelay time.Duration `mapstructure:"complete_delay" validate:"gt=0"`
	TickInterval  time.Duration `mapstructure:"tick_interval" validate:"gt=0"`

	// ShuffleSeed fixes the shuffle order when non-zero
	ShuffleSeed int64 `mapstructure:"shuffle_seed" validate:"gte=0"`

	Progression ProgressionConfig `mapstructure:"progression"`
}

// ProgressionConfig sets the first and last level tier of each difficulty.
// Tiers are numbered 1 to 10.
type ProgressionConfig struct {
	EasyInitial   int `mapstructure:"easy_initial" validate:"gte=1,lte=10"`
	MediumInitial int `mapstructure:"medium_initial" validate:"gte=1,lte=10"`
	HardInitial   int `mapstructure:"hard_initial" validate:"gte=1,lte=10"`

	EasyFinal   int `mapstructure:"easy_final" validate:"gte=1,lte=10,gtefield=EasyInitial"`
	MediumFinal int `mapstructure:"medium_final" validate:"gte=1,lte=10,gtefield=MediumInitial"`
	HardFinal   int `mapstructure:"hard_final" validate:"gte=1,lte=10,gtefield=HardInitial"`
}
