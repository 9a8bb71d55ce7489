//go:build integration

package seed

import (
	"net/url"
	"os"
	"strings"
	"testing"

	"fitfeed/internal/config"
	"fitfeed/internal/database"
	"fitfeed/internal/models"
)

func parseDatabaseURLToConfig(dsn string) (*config.Config, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	password := ""
	if u.User != nil {
		password, _ = u.User.Password()
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	dbname := strings.TrimPrefix(u.Path, "/")
	cfg := &config.Config{
		DBHost:       host,
		DBPort:       port,
		DBUser:       u.User.Username(),
		DBPassword:   password,
		DBName:       dbname,
		DBSSLMode:    "disable",
		Env:          "test",
		DBSchemaMode: "auto",
	}
	return cfg, nil
}

func TestIntegration_SeedTemplatesAndMesh(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration seed test")
	}
	cfg, err := parseDatabaseURLToConfig(dsn)
	if err != nil {
		t.Fatalf("failed parse dsn: %v", err)
	}
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: true})
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	if truncateErr := database.TruncateAllTables(db); truncateErr != nil {
		t.Fatalf("truncate failed: %v", truncateErr)
	}

	if err := Templates(db); err != nil {
		t.Fatalf("seed templates: %v", err)
	}

	seeder := NewSeeder(db, Options{SkipBcrypt: true})
	users, err := seeder.SeedSocialMesh(10)
	if err != nil {
		t.Fatalf("seed social mesh: %v", err)
	}
	if _, err := seeder.SeedEngagement(users, 30); err != nil {
		t.Fatalf("seed engagement: %v", err)
	}

	var workoutCount int64
	if err := db.Model(&models.Workout{}).Count(&workoutCount).Error; err != nil {
		t.Fatalf("count workouts: %v", err)
	}
	if workoutCount < int64(len(BuiltInTemplates))+30 {
		t.Fatalf("expected at least %d workouts, got %d", len(BuiltInTemplates)+30, workoutCount)
	}
}
