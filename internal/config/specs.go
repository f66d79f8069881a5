// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// BaseURL is the public origin of the application, used to compose
	// magic-link and invitation URLs.
	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisURL string `envconfig:"redis_url" default:"redis://localhost:6379"`

	SessionSecret   string        `envconfig:"session_secret" required:"true"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"720h"`

	LoginTokenLifetime time.Duration `envconfig:"login_token_lifetime" default:"15m"`
	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	DirectoryPageSize uint64 `envconfig:"directory_page_size" default:"1000"`

	SMTPHost string `envconfig:"smtp_host"`
	SMTPPort int    `envconfig:"smtp_port" default:"587"`
	SMTPUser string `envconfig:"smtp_user"`
	SMTPPass string `envconfig:"smtp_pass"`
	SMTPFrom string `envconfig:"smtp_from" default:"noreply@parasautohuolto.fi"`
}
