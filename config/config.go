// Package config exposes environment-derived settings for the ttcloud server.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("TTCLOUD_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("TTCLOUD_DEBUG") == "true"
}

// IsProduction gates the Secure cookie flag and reverse-proxy trust.
func IsProduction() bool {
	return os.Getenv("TTCLOUD_ENV") == "production"
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("TTCLOUD_PORT"))
	if err != nil || port <= 0 {
		return 8000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("TTCLOUD_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "."
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

// GetLogFolder returns the folder for the file log backend.
// An empty value disables file logging.
func GetLogFolder() string {
	return os.Getenv("TTCLOUD_LOG_FOLDER")
}

func GetCookieName() string {
	cookieName := os.Getenv("COOKIE_NAME")
	if cookieName == "" {
		cookieName = "ttcloud-cookie-session"
	}
	return cookieName
}

func GetCookieSecret() string {
	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		secret = "session_key_please_change_me"
	}
	return secret
}

func GetCookieDomain() string {
	return os.Getenv("COOKIE_DOMAIN")
}

// IsGravatarEnabled toggles derived avatar URLs on restored identities.
func IsGravatarEnabled() bool {
	return os.Getenv("ENABLE_GRAVATAR") != ""
}

// GetServerDomain is the public base URL used to build returned upload URLs.
func GetServerDomain() string {
	domain := os.Getenv("SERVER_DOMAIN")
	if domain == "" {
		domain = fmt.Sprintf("http://localhost:%d", GetPort())
	}
	return domain
}
