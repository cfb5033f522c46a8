package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvFile необязательный файл с переменными окружения для локального запуска.
const dotenvFile = ".env"

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	LogLevel      string `env:"LOG_LEVEL"`

	Ebics EbicsConfig `envPrefix:"EBICS_"`
	S3    S3Config
	Kafka KafkaConfig `envPrefix:"KAFKA_"`
}

type EbicsConfig struct {
	URL       string        `env:"URL"`
	HostID    string        `env:"HOST_ID"`
	PartnerID string        `env:"PARTNER_ID"`
	Timeout   time.Duration `env:"TIMEOUT"`
}

type S3Config struct {
	Bucket   string `env:"S3_BUCKET"`
	Region   string `env:"S3_REGION"`
	Endpoint string `env:"S3_ENDPOINT"`
	// ключи необязательны, без них используется стандартная цепочка aws (роль, профиль).
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

// KafkaConfig если брокеры не заданы, события не публикуются.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC"`
}

func LoadConfig() (*Config, error) {
	environ, err := withDotenv(env.ToMap(os.Environ()), dotenvFile)
	if err != nil {
		return nil, err
	}
	return loadConfig(os.Args[1:], environ)
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string, environ map[string]string) (*Config, error) {
	var envConfig Config
	if envParseErr := env.ParseWithOptions(&envConfig, env.Options{Environment: environ}); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	flagsConfig, flagsErr := loadFlags(args)
	if flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// withDotenv дополняет environ значениями из файла path. Переменные окружения процесса важнее файла,
// отсутствие файла ошибкой не считается.
func withDotenv(environ map[string]string, path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return environ, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}
	return environ, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is not set"))
	}
	if c.Ebics.URL == "" {
		errs = append(errs, errors.New("ebics url is not set"))
	}
	if c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3 bucket is not set"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka topic is not set"))
	}
	return errors.Join(errs...)
}

func loadFlags(args []string) (*Config, error) {
	var flagConfig Config
	var brokers string

	flags := flag.NewFlagSet("bankorder", flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret")
	flags.StringVar(&flagConfig.LogLevel, "l", "", "Log level, overrides the environment default")
	flags.StringVar(&flagConfig.Ebics.URL, "e", "", "EBICS bank server URL")
	flags.StringVar(&flagConfig.Ebics.HostID, "host-id", "", "EBICS host ID")
	flags.StringVar(&flagConfig.Ebics.PartnerID, "partner-id", "", "EBICS partner ID")
	flags.DurationVar(&flagConfig.Ebics.Timeout, "ebics-timeout", 30*time.Second, "EBICS request timeout") //nolint:mnd
	flags.StringVar(&flagConfig.S3.Bucket, "b", "", "S3 bucket for payment files")
	flags.StringVar(&flagConfig.S3.Region, "s3-region", "eu-west-3", "S3 region")
	flags.StringVar(&flagConfig.S3.Endpoint, "s3-endpoint", "", "S3 endpoint, for S3 compatible storages")
	flags.StringVar(&brokers, "k", "", "Kafka brokers, comma separated")
	flags.StringVar(&flagConfig.Kafka.Topic, "t", "bank-order-events", "Kafka topic for bank order events")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if brokers != "" {
		flagConfig.Kafka.Brokers = strings.Split(brokers, ",")
	}
	return &flagConfig, nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		LogLevel:      defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		Ebics: EbicsConfig{
			URL:       defaultIfBlank(envConfig.Ebics.URL, flagsConfig.Ebics.URL),
			HostID:    defaultIfBlank(envConfig.Ebics.HostID, flagsConfig.Ebics.HostID),
			PartnerID: defaultIfBlank(envConfig.Ebics.PartnerID, flagsConfig.Ebics.PartnerID),
			Timeout:   flagsConfig.Ebics.Timeout,
		},
		S3: S3Config{
			Bucket:          defaultIfBlank(envConfig.S3.Bucket, flagsConfig.S3.Bucket),
			Region:          defaultIfBlank(envConfig.S3.Region, flagsConfig.S3.Region),
			Endpoint:        defaultIfBlank(envConfig.S3.Endpoint, flagsConfig.S3.Endpoint),
			AccessKeyID:     envConfig.S3.AccessKeyID,
			SecretAccessKey: envConfig.S3.SecretAccessKey,
		},
		Kafka: KafkaConfig{
			Brokers: flagsConfig.Kafka.Brokers,
			Topic:   defaultIfBlank(envConfig.Kafka.Topic, flagsConfig.Kafka.Topic),
		},
	}
	if envConfig.Ebics.Timeout != 0 {
		conf.Ebics.Timeout = envConfig.Ebics.Timeout
	}
	if len(envConfig.Kafka.Brokers) > 0 {
		conf.Kafka.Brokers = envConfig.Kafka.Brokers
	}
	return conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// String скрывает секреты, чтобы конфиг можно было писать в лог.
func (c Config) String() string {
	masked := c
	masked.DatabaseDSN = mask(c.DatabaseDSN)
	masked.JWTSecret = mask(c.JWTSecret)
	masked.S3.SecretAccessKey = mask(c.S3.SecretAccessKey)
	type plain Config
	return fmt.Sprintf("%+v", plain(masked))
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
