package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config es el snapshot inmutable de configuración del proceso.
// Se construye una vez en el arranque y se pasa por valor.
type Config struct {
	App struct {
		// dev | prod
		Env string `yaml:"app_env"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Server struct {
		Addr            string        `yaml:"addr"`
		PublicURL       string        `yaml:"public_url"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Mail Mail `yaml:"mail"`

	Metrics struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// Mail agrupa las credenciales del probe. Los cuatro primeros campos vienen
// del entorno y se tratan como strings opacos: no se validan ni tienen default.
type Mail struct {
	Service     string `yaml:"service"`
	User        string `yaml:"user"`
	Pass        string `yaml:"pass"`
	SenderEmail string `yaml:"sender_email"`

	// Overrides opcionales del servicio well-known.
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Secure             bool   `yaml:"secure"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"` // sólo dev
}

// Env var names read by the loader.
const (
	EnvMailService     = "NODEMAILER_SERVICE"
	EnvMailUser        = "NODEMAILER_USER"
	EnvMailPass        = "NODEMAILER_PASS"
	EnvMailSenderEmail = "NODEMAILER_SENDER_EMAIL"
)

const (
	defaultAddr            = ":3001"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 90 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

// MetricsEnabled reports whether /metrics and the HTTP collectors are on.
func (c Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

// Load lee el YAML en path (si no es vacío), aplica defaults y overrides por env.
// Los valores de Mail no se validan: un valor ausente queda vacío y falla más
// tarde en el transporte con el error del proveedor.
func Load(path string) (Config, error) {
	var c Config

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	c.applyEnvOverrides()
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Server.PublicURL == "" {
		c.Server.PublicURL = publicURLFromAddr(c.Server.Addr)
	}
	c.Server.PublicURL = strings.TrimRight(c.Server.PublicURL, "/")
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
}

func (c *Config) applyEnvOverrides() {
	// APP
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	// SERVER
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvStr("SERVER_PUBLIC_URL"); ok {
		c.Server.PublicURL = v
	}
	if v, ok := getEnvDur("SERVER_READ_TIMEOUT"); ok {
		c.Server.ReadTimeout = v
	}
	if v, ok := getEnvDur("SERVER_WRITE_TIMEOUT"); ok {
		c.Server.WriteTimeout = v
	}
	if v, ok := getEnvDur("SERVER_SHUTDOWN_TIMEOUT"); ok {
		c.Server.ShutdownTimeout = v
	}

	// MAIL (credenciales, sin trim: se pasan tal cual al proveedor)
	if v, ok := os.LookupEnv(EnvMailService); ok {
		c.Mail.Service = v
	}
	if v, ok := os.LookupEnv(EnvMailUser); ok {
		c.Mail.User = v
	}
	if v, ok := os.LookupEnv(EnvMailPass); ok {
		c.Mail.Pass = v
	}
	if v, ok := os.LookupEnv(EnvMailSenderEmail); ok {
		c.Mail.SenderEmail = v
	}

	// SMTP overrides
	if v, ok := getEnvStr("SMTP_HOST"); ok {
		c.Mail.Host = v
	}
	if v, ok := getEnvInt("SMTP_PORT"); ok {
		c.Mail.Port = v
	}
	if v, ok := getEnvBool("SMTP_SECURE"); ok {
		c.Mail.Secure = v
	}
	if v, ok := getEnvBool("SMTP_INSECURE_SKIP_VERIFY"); ok {
		c.Mail.InsecureSkipVerify = v
	}

	// METRICS
	if v, ok := getEnvBool("METRICS_ENABLED"); ok {
		c.Metrics.Enabled = &v
	}
}

// Validate chequea sólo valores ambientales (server). Mail nunca se valida.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config: server timeouts must be positive")
	}
	if c.Mail.Port < 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("config: mail.port out of range: %d", c.Mail.Port)
	}
	return nil
}

// publicURLFromAddr arma http://localhost:<port> a partir de un listen addr.
func publicURLFromAddr(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return "http://localhost"
	}
	return "http://localhost:" + port
}

func getEnvStr(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return b, true
		}
	}
	return false, false
}

func getEnvDur(key string) (time.Duration, bool) {
	if s, ok := getEnvStr(key); ok {
		if d, err := time.ParseDuration(s); err == nil {
			return d, true
		}
	}
	return 0, false
}
