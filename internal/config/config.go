package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type RechargeConfig struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	RechargeDB      `yaml:"recharge_db"`
	LogConfig       `yaml:"log_config"`
	AirtimeProvider `yaml:"airtime_provider"`
	KafkaService    `yaml:"kafka_service"`
	JWT             `yaml:"jwt"`
	Bulk            `yaml:"bulk"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RechargeDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

// AirtimeProvider holds the upstream provisioning API credentials. Built
// once at startup and injected; never read from the environment at call time.
type AirtimeProvider struct {
	Name           string        `yaml:"name" env-default:"safaricom"`
	BaseURL        string        `yaml:"base_url"`
	ConsumerKey    string        `yaml:"consumer_key" env:"PROVIDER_CONSUMER_KEY"`
	ConsumerSecret string        `yaml:"consumer_secret" env:"PROVIDER_CONSUMER_SECRET"`
	Timeout        time.Duration `yaml:"timeout" env-default:"30s"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"recharge-events"`
}

type JWT struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET"`
	TTL    time.Duration `yaml:"ttl" env-default:"24h"`
}

type Bulk struct {
	Workers int `yaml:"workers" env-default:"4"`
}

func MustLoad() *RechargeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("RECHARGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("RECHARGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RechargeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
