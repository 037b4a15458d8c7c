package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath     = ".env"
	DefaultPort = "3000"
	EnvLocal    = "local"
	EnvDev      = "dev"
	EnvProd     = "prod"
)

type Config struct {
	Env    string
	DB     db
	Cache  cache
	Server server
	Logger logger
}

type defaultConfig struct {
	Port          string
	DatabaseURI   string
	Migrations    string
	RedisAddr     string
	RedisPassword string
	LogLevel      string
	Env           string
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type cache struct {
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

type server struct {
	Port string `env:"PORT"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		Port:          viper.GetString("port"),
		DatabaseURI:   viper.GetString("database_uri"),
		Migrations:    viper.GetString("migrations_path"),
		RedisAddr:     viper.GetString("redis_addr"),
		RedisPassword: viper.GetString("redis_password"),
		LogLevel:      viper.GetString("log_level"),
		Env:           viper.GetString("app_env"),
	}
	if d.Port == "" {
		d.Port = DefaultPort
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}
	if d.RedisAddr == "" {
		d.RedisAddr = "localhost:6379"
	}

	config := Config{
		Env: d.Env,
		DB: db{
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Cache: cache{
			RedisAddr:     d.RedisAddr,
			RedisPassword: d.RedisPassword,
		},
		Server: server{Port: d.Port},
		Logger: logger{LogLevel: d.LogLevel},
	}

	return &config
}

// RunAddress is the listen address for the HTTP server, all interfaces.
func (c *Config) RunAddress() string {
	return ":" + c.Server.Port
}
