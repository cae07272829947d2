package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
	SignupCode  string
}

type ServerConfig struct {
	HTTPAddr       string
	TCPAddr        string
	UDPAddr        string
	AllowedOrigins []string
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("TACOTANGO_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("TACOTANGO_JWT_ISSUER")
	if issuer == "" {
		issuer = "tacotango"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("TACOTANGO_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
		// empty means admin signups are disabled
		SignupCode: os.Getenv("TACOTANGO_ADMIN_SIGNUP_CODE"),
	}
}

func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		HTTPAddr: ":8080",
		TCPAddr:  ":7070",
		UDPAddr:  ":9090",
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
	}
	if addr := os.Getenv("TACOTANGO_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if addr := os.Getenv("TACOTANGO_TCP_ADDR"); addr != "" {
		cfg.TCPAddr = addr
	}
	if addr := os.Getenv("TACOTANGO_UDP_ADDR"); addr != "" {
		cfg.UDPAddr = addr
	}
	if origin := os.Getenv("TACOTANGO_FRONTEND_ORIGIN"); origin != "" {
		cfg.AllowedOrigins = []string{origin}
	}
	return cfg
}
