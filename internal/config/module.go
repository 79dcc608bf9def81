package config

import "go.uber.org/fx"

// Module provides *Config, read once from .env, the environment and flags.
var Module = fx.Provide(Load)
