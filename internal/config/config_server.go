package config

import (
	"fmt"
	"time"
)

// AuthConfig holds the token settings the server auth service needs.
type AuthConfig struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim embedded in every issued token.
	TokenIssuer string
	// TokenDuration specifies how long an issued token remains valid.
	TokenDuration time.Duration
}

// DBConfig contains server database connection settings.
type DBConfig struct {
	// DSN is the PostgreSQL connection string.
	DSN string
}

// StorageConfig groups server storage backend settings.
type StorageConfig struct {
	// DB holds relational database settings.
	DB DBConfig
}

// HTTPServerConfig holds inbound transport settings.
type HTTPServerConfig struct {
	// Address is the TCP address the HTTP server listens on.
	Address string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Auth contains token signing settings.
	Auth AuthConfig
	// Storage contains database settings.
	Storage StorageConfig
	// Server contains inbound transport settings.
	Server HTTPServerConfig
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Auth: AuthConfig{
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
		},
		Storage: StorageConfig{
			DB: DBConfig{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: HTTPServerConfig{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
