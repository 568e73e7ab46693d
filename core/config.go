package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	WorkDir  string

	Server struct {
		Host string
		Addr string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// media storage for uploaded reference files
	MediaRoot string
	MediaURL  string

	DefaultFromEmail mail.Address
	NoticeEmail      mail.Address // recipient of exam schedule notices

	SendgridAPIKey string
	RollbarToken   string
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("redisAddr", "localhost:6379")
	v.SetDefault("redisPassword", "")
	v.SetDefault("redisDB", 0)
	v.SetDefault("mediaRoot", filepath.Join(Getwd(), "media"))
	v.SetDefault("mediaURL", "/media")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("noticeEmail", "staffroom@localhost")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		Env:              env,
		AppName:          v.GetString("appName"),
		WorkDir:          Getwd(),
		MediaRoot:        v.GetString("mediaRoot"),
		MediaURL:         v.GetString("mediaURL"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		NoticeEmail:      mail.Address{Address: v.GetString("noticeEmail")},
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
	}
	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Addr = v.GetString("serverAddr")
	Conf.Redis.Addr = v.GetString("redisAddr")
	Conf.Redis.Password = v.GetString("redisPassword")
	Conf.Redis.DB = v.GetInt("redisDB")
}

// Getwd returns the app's root working directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd: %v", err)
	}
	return wd
}
