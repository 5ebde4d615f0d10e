package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	ApiServer ServerConfigs   `toml:"api_server"`
	Database  DatabaseConfigs `toml:"database"`
	Kafka     KafkaConfigs    `toml:"kafka"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type KafkaConfigs struct {
	Addrs          []string `toml:"addrs"`
	UserEventTopic string   `toml:"user_event_topic"`
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		ApiServer: ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "userhub",
			User:     "root",
			Password: "",
		},
		Kafka: KafkaConfigs{
			Addrs:          []string{"localhost:9092"},
			UserEventTopic: "user-events",
		},
	}
}

// Load builds the configuration from defaults, then the toml file at path (if
// any), then environment variables. Later sources win.
func Load(path string) (Configs, error) {
	configs := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &configs); err != nil {
			return configs, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&configs)
	return configs, nil
}

func applyEnvOverrides(configs *Configs) {
	overrideString(&configs.Env, "ENV")
	overrideString(&configs.LogLevel, "LOG_LEVEL")
	overrideString(&configs.ApiServer.Host, "API_HOST")
	overrideString(&configs.ApiServer.Port, "API_PORT")
	overrideString(&configs.Database.Host, "DB_HOST")
	overrideString(&configs.Database.Port, "DB_PORT")
	overrideString(&configs.Database.Database, "DB_DATABASE")
	overrideString(&configs.Database.User, "DB_USER")
	overrideString(&configs.Database.Password, "DB_PASSWORD")
	overrideString(&configs.Kafka.UserEventTopic, "KAFKA_USER_EVENT_TOPIC")

	if v := os.Getenv("KAFKA_ADDRS"); v != "" {
		configs.Kafka.Addrs = strings.Split(v, ",")
	}
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
