package config

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrMissingCredentials means the Postgres connection settings are not
// set. It is a valid configuration state, reported once at startup.
var ErrMissingCredentials = errors.New("postgres credentials are not configured")

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

func (c DBConfig) Validate() error {
	if c.Username == "" || c.Host == "" || c.Port == "" || c.DBName == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (c DBConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// AuthConfig gates the authenticated surface. Without an access secret
// the service runs read-only: auth, write and upload routes are not
// mounted at all.
type AuthConfig struct {
	AccessSecret []byte
	AccessTTL    time.Duration
}

func (c AuthConfig) Enabled() bool {
	return len(c.AccessSecret) > 0
}
