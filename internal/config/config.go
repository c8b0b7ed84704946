package config

import (
	"os"
	"path"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort        int      `yaml:"http_port"`
	SessionTTLHours int      `yaml:"session_ttl_hours"` // admin cookie lifetime, 24 by default
	SecureCookies   bool     `yaml:"secure_cookies"`
	CorsOrigins     []string `yaml:"cors_origins"`
	LogLevel        string   `yaml:"log_level"`
	LogJSON         bool     `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg            Pg     `yaml:"pg"`
	JwtKey        string `yaml:"jwt_key"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) SessionTTL() time.Duration {
	if c.Public.SessionTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Public.SessionTTLHours) * time.Hour
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// applyEnv lets deployment secrets override the yaml values, so private.yaml
// can stay a non-secret template in the repo.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Private.AdminEmail = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Private.AdminPassword = v
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		cfg.Private.JwtKey = v
	}
	if v := os.Getenv("PG_HOST"); v != "" {
		cfg.Private.Pg.Host = v
	}
	if v := os.Getenv("PG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Private.Pg.Port = port
		}
	}
	if v := os.Getenv("PG_USER"); v != "" {
		cfg.Private.Pg.User = v
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		cfg.Private.Pg.Password = v
	}
	if v := os.Getenv("PG_DBNAME"); v != "" {
		cfg.Private.Pg.Dbname = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Public.HttpPort = port
		}
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	applyEnv(cfg)
	return cfg
}
