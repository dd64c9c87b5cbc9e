package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	CatalogBaseURL string
	DBDSN          string
	HTTPTimeout    time.Duration
	LogFile        string
	Port           string
}

func Load() Config {
	base := os.Getenv("CATALOG_BASE_URL")
	if base == "" {
		base = "https://fakestoreapi.com"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "pocketshop.db"
	} // sqlite file in project root
	timeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}
	logFile := os.Getenv("LOG_FILE")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	} // only used by catalogd

	cfg := Config{CatalogBaseURL: base, DBDSN: dsn, HTTPTimeout: timeout, LogFile: logFile, Port: port}
	log.Printf("[config] CATALOG_BASE_URL=%s DB_DSN=%s HTTP_TIMEOUT=%s LOG_FILE=%s PORT=%s",
		cfg.CatalogBaseURL, cfg.DBDSN, cfg.HTTPTimeout, cfg.LogFile, cfg.Port)
	return cfg
}
