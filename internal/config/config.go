// Package config loads the settings shared by every tutorial command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration. Values come from a YAML file and are
// overridden by environment variables.
type Config struct {
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	Routes          RoutesConfig  `yaml:"routes"`
	Todo            TodoConfig    `yaml:"todo"`
	Hello           HelloConfig   `yaml:"hello"`
	Items           ItemsConfig   `yaml:"items"`
	Mongo           MongoConfig   `yaml:"mongo"`
	SOAP            SOAPConfig    `yaml:"soap"`
	Quote           QuoteConfig   `yaml:"quote"`
	UI              UIConfig      `yaml:"ui"`
}

type RoutesConfig struct {
	Addr    string `yaml:"addr" env:"ROUTES_ADDR" env-default:":8181"`
	BaseURL string `yaml:"base_url" env:"ROUTES_BASE_URL" env-default:"http://127.0.0.1:8181"`
}

type TodoConfig struct {
	Addr    string `yaml:"addr" env:"TODO_ADDR" env-default:":8182"`
	BaseURL string `yaml:"base_url" env:"TODO_BASE_URL" env-default:"http://127.0.0.1:8182"`
	// Backend selects the repository: gorm, sqlx or json.
	Backend  string `yaml:"backend" env:"TODO_BACKEND" env-default:"gorm"`
	DSN      string `yaml:"dsn" env:"TODO_DSN" env-default:"todo.db"`
	JSONPath string `yaml:"json_path" env:"TODO_JSON_PATH" env-default:"todos.json"`
}

type HelloConfig struct {
	Addr string `yaml:"addr" env:"HELLO_ADDR" env-default:":8183"`
}

type ItemsConfig struct {
	Addr      string `yaml:"addr" env:"ITEMS_ADDR" env-default:":8184"`
	TableName string `yaml:"table_name" env:"TABLE_NAME" env-default:"MyTable"`
	Endpoint  string `yaml:"dynamodb_endpoint" env:"DYNAMODB_ENDPOINT"`
	Region    string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
}

type MongoConfig struct {
	Username   string        `yaml:"username" env:"MONGODB_USERNAME" env-default:"admin"`
	Password   string        `yaml:"password" env:"MONGODB_PASSWORD"`
	Host       string        `yaml:"host" env:"MONGODB_HOST" env-default:"localhost"`
	Port       int           `yaml:"port" env:"MONGODB_PORT" env-default:"27017"`
	AuthDB     string        `yaml:"auth_db" env:"MONGODB_AUTH_DB" env-default:"admin"`
	Timeout    time.Duration `yaml:"timeout" env:"MONGODB_TIMEOUT" env-default:"5s"`
	Database   string        `yaml:"database" env:"MONGODB_DATABASE" env-default:"blog"`
	Collection string        `yaml:"collection" env:"MONGODB_COLLECTION" env-default:"posts"`
}

type SOAPConfig struct {
	CalculatorURL  string        `yaml:"calculator_url" env:"SOAP_CALCULATOR_URL" env-default:"http://www.dneonline.com/calculator.asmx"`
	CountryInfoURL string        `yaml:"country_info_url" env:"SOAP_COUNTRY_INFO_URL" env-default:"http://webservices.oorsprong.org/websamples.countryinfo/CountryInfoService.wso"`
	TempConvertURL string        `yaml:"temp_convert_url" env:"SOAP_TEMP_CONVERT_URL" env-default:"https://www.w3schools.com/xml/tempconvert.asmx"`
	Timeout        time.Duration `yaml:"timeout" env:"SOAP_TIMEOUT" env-default:"15s"`
}

type QuoteConfig struct {
	URL     string        `yaml:"url" env:"QUOTE_URL" env-default:"https://dummyjson.com/quotes/random"`
	Timeout time.Duration `yaml:"timeout" env:"QUOTE_TIMEOUT" env-default:"10s"`
}

type UIConfig struct {
	Theme string `yaml:"theme" env:"UI_THEME" env-default:"classic"`
}

// Load reads path and applies env overrides. A missing file is not an error:
// the config then comes from env and defaults only. An empty path skips the file.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
