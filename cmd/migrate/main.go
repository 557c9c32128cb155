package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/promptdeck/promptdeck-backend/internal/config"
	"github.com/promptdeck/promptdeck-backend/internal/migration"
	pkglogger "github.com/promptdeck/promptdeck-backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "config file path (default configs/config.<APP_ENV>.yaml)")
	flag.Parse()

	config.LoadDotEnv()
	pkglogger.Init()

	path := *configPath
	if path == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "local"
		}
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db, cfg.Seed); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Migration complete")
}
