package config

import (
	"os"
	"sync"
)

type DBConfig struct {
	Path string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "demand_letters.db"
		}
		dbConfig = &DBConfig{
			Path: path,
		}
	})
	return dbConfig
}
