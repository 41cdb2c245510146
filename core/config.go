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
	// Config holds all the settings the application needs to run.
	// Values come from defaults, an optional `config/.env.<env>` file and
	// environment variables (prefixed with the current ENV), in that order.
	Config struct {
		AppName          string
		Env              string // DEV (local; default), TEST, QA, PROD
		Debug            bool
		TestMode         bool
		Build            string
		SecretKey        string
		DefaultFromEmail mail.Address
		FrontendBaseURL  string
		SendgridAPIKey   string
		RollbarToken     string

		// ReminderOffsets is the enumerated set of "remind me N days before"
		// options a reminder may be scheduled with.
		ReminderOffsets []int

		Server    ServerConfig
		Classroom UpstreamConfig
		Backend   UpstreamConfig
	}

	ServerConfig struct {
		Addr               string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	// UpstreamConfig configures one of the external HTTP collaborators.
	UpstreamConfig struct {
		BaseURL string
		Timeout time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "UniPlan")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "x2m)7dq&0x+$e]g8u!97=hz&uoxh2(h!x)#*c2(#yg4h^$ceg")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("frontendBaseURL", "http://127.0.0.1:5173")
	v.SetDefault("serverAddr", ":8080")
	v.SetDefault("serverDebugHost", "0.0.0.0:4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 8*time.Hour)
	v.SetDefault("classroomBaseURL", "http://127.0.0.1:8000")
	v.SetDefault("classroomTimeout", 15*time.Second)
	v.SetDefault("backendBaseURL", "http://127.0.0.1:8000/api")
	v.SetDefault("backendTimeout", 10*time.Second)
	v.SetDefault("reminderOffsets", []int{1, 3, 7})

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:          v.GetString("appName"),
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		Build:            v.GetString("build"),
		SecretKey:        v.GetString("secretKey"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		SendgridAPIKey:   v.GetString("sendgridAPIKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		ReminderOffsets:  v.GetIntSlice("reminderOffsets"),
		Server: ServerConfig{
			Addr:               v.GetString("serverAddr"),
			DebugHost:          v.GetString("serverDebugHost"),
			ShutdownTimeout:    v.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Classroom: UpstreamConfig{
			BaseURL: v.GetString("classroomBaseURL"),
			Timeout: v.GetDuration("classroomTimeout"),
		},
		Backend: UpstreamConfig{
			BaseURL: v.GetString("backendBaseURL"),
			Timeout: v.GetDuration("backendTimeout"),
		},
	}
}
