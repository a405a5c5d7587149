package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/config"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	var (
		dir    = flag.String("dir", "migrations", "directory containing migration files")
		action = flag.String("action", "up", "migration action: up, down, drop, version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", *dir), cfg.Database.URL)
	if err != nil {
		logger.Fatalf("Failed to initialize migrations: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "drop":
		err = m.Drop()
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			logger.Fatalf("Failed to read migration version: %v", verr)
		}
		logger.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Current migration version")
		return
	default:
		logger.Errorf("Unknown action: %s", *action)
		flag.Usage()
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatalf("Migration %s failed: %v", *action, err)
	}

	logger.Infof("Migration %s completed", *action)
}
