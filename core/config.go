package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	serverConfig struct {
		Address         string
		DisableReqLogs  bool
		ShutdownTimeout time.Duration
	}

	storeConfig struct {
		Driver string // sqlite3 | memory
		Path   string
	}

	llmConfig struct {
		Provider    string // openai | dummy
		BaseURL     string
		APIKey      string
		Model       string
		Timeout     time.Duration
		Temperature float64
	}

	progressConfig struct {
		VideoCompletionDelay time.Duration
	}

	notifyConfig struct {
		SendgridAPIKey string
		FromEmail      mail.Address
		ToEmail        string
	}

	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		WorkDir      string
		RollbarToken string
		Server       serverConfig
		Store        storeConfig
		LLM          llmConfig
		Progress     progressConfig
		Notify       notifyConfig
	}
)

func newViper() (*viper.Viper, string) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "CourseCompass")
	conf.SetDefault("build", "dev")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.address", ":8080")
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("store.driver", "sqlite3")
	conf.SetDefault("store.path", filepath.Join(".coursecompass", "session.db"))
	conf.SetDefault("llm.provider", "openai")
	conf.SetDefault("llm.baseURL", "https://api.openai.com")
	conf.SetDefault("llm.apiKey", "")
	conf.SetDefault("llm.model", "gpt-4o-mini")
	conf.SetDefault("llm.timeout", 60*time.Second)
	conf.SetDefault("llm.temperature", 0.4)
	conf.SetDefault("progress.videoCompletionDelay", 15*time.Second)
	conf.SetDefault("notify.sendgridApiKey", "")
	conf.SetDefault("notify.fromEmail", "noreply@localhost")
	conf.SetDefault("notify.toEmail", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()
	return conf, env
}

// NewConfig reads the application configuration from defaults, `config/.env.<env>` and the environment.
// Environment variables are prefixed with the current ENV, e.g. DEV_LLM_APIKEY.
func NewConfig() *Config {
	v, env := newViper()

	cfg := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		WorkDir:      Getwd(),
		RollbarToken: v.GetString("rollbarToken"),
		Server: serverConfig{
			Address:         v.GetString("server.address"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		Store: storeConfig{
			Driver: v.GetString("store.driver"),
			Path:   v.GetString("store.path"),
		},
		LLM: llmConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			BaseURL:     strings.TrimRight(v.GetString("llm.baseURL"), "/"),
			APIKey:      v.GetString("llm.apiKey"),
			Model:       v.GetString("llm.model"),
			Timeout:     v.GetDuration("llm.timeout"),
			Temperature: v.GetFloat64("llm.temperature"),
		},
		Progress: progressConfig{
			VideoCompletionDelay: v.GetDuration("progress.videoCompletionDelay"),
		},
		Notify: notifyConfig{
			SendgridAPIKey: v.GetString("notify.sendgridApiKey"),
			ToEmail:        v.GetString("notify.toEmail"),
		},
	}

	from, err := mail.ParseAddress(v.GetString("notify.fromEmail"))
	if err != nil {
		log.Fatalf("config.notify.fromEmail: %v", err)
	}
	cfg.Notify.FromEmail = *from
	return cfg
}

// NewTestConfig returns a Config suited to tests: in-memory store, dummy model, no delays.
func NewTestConfig() *Config {
	from := mail.Address{Address: "noreply@localhost"}
	return &Config{
		AppName:  "CourseCompass",
		Env:      "TEST",
		Build:    "test",
		Debug:    true,
		TestMode: true,
		Server: serverConfig{
			Address:         ":0",
			DisableReqLogs:  true,
			ShutdownTimeout: time.Second,
		},
		Store: storeConfig{Driver: "memory"},
		LLM: llmConfig{
			Provider: "dummy",
			Timeout:  time.Second,
		},
		Progress: progressConfig{VideoCompletionDelay: 10 * time.Millisecond},
		Notify:   notifyConfig{FromEmail: from},
	}
}
