package main

import (
	"io"
	"log"
	"os"

	"pocketshop/internal/catalogd"
	"pocketshop/internal/config"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := catalogd.OpenDB("catalogd.db")
	if err != nil {
		log.Fatal(err)
	}

	app := catalogd.NewApp(db)
	log.Fatal(app.Listen(":" + cfg.Port))
}
