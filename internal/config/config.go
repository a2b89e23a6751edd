package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	API        API
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Prometheus struct {
	Address string
	Port    int
}

// API holds the static values announced by the response headers.
type API struct {
	Version            string
	Author             string
	DocumentationURL   string
	RateLimit          string
	RateLimitRemaining string
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "userpost-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "userpostservice")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9104)

	viper.SetDefault("api.version", "v1.0.0")
	viper.SetDefault("api.author", "Your Name")
	viper.SetDefault("api.documentation_url", "https://your-api-docs.com")
	viper.SetDefault("api.rate_limit", "1000")
	viper.SetDefault("api.rate_limit_remaining", "999")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		API: API{
			Version:            viper.GetString("api.version"),
			Author:             viper.GetString("api.author"),
			DocumentationURL:   viper.GetString("api.documentation_url"),
			RateLimit:          viper.GetString("api.rate_limit"),
			RateLimitRemaining: viper.GetString("api.rate_limit_remaining"),
		},
	}

	return config
}
