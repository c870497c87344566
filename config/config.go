package config

import (
	"encoding/json"
	"os"

	"github.com/vitrine-lab/vitrineserv/internal/auth"
	"github.com/vitrine-lab/vitrineserv/internal/httpserver"
	"github.com/vitrine-lab/vitrineserv/pkg/kafkaSender"
	"github.com/vitrine-lab/vitrineserv/pkg/postgres"
	"github.com/vitrine-lab/vitrineserv/pkg/redis"
)

type Config struct {
	HTTP     httpserver.Config
	Postgres postgres.Config
	Redis    redis.Config
	Auth     auth.Config
	Kafka    kafkaSender.Config
}

func Load(filepath string) (cfg Config, err error) {

	file, err := os.Open(filepath)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	err = json.NewDecoder(file).Decode(&cfg)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

func Default() Config {
	return Config{
		HTTP: httpserver.Config{
			Host: ":8080",
		},
		Postgres: postgres.Config{
			DBHost:  "localhost",
			DBPort:  "5432",
			DBUser:  "postgres",
			DBName:  "vitrine",
			SSLMode: "disable",
		},
		Redis: redis.Config{
			Host: "localhost",
			Port: "6379",
		},
	}
}
