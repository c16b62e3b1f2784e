package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
		// TLSTerminated is an explicit deployment signal. The Secure flag on
		// session cookies follows this value, never a client-supplied
		// forwarded-proto header.
		TLSTerminated bool   `mapstructure:"tls_terminated"`
		PublicDir     string `mapstructure:"public_dir"`
	} `mapstructure:"server"`
	Auth struct {
		// Mode selects the credential strategy: "token" (one-time token
		// exchange, the default) or "access_code" (static code checked
		// against AccessCodeHash).
		Mode string `mapstructure:"mode"`
		// AccessCodeHash is a bcrypt hash of the access code. The plaintext
		// code is never stored anywhere; set it via the ACCESS_CODE_HASH
		// environment variable in deployments.
		AccessCodeHash string        `mapstructure:"access_code_hash"`
		TokenTTL       time.Duration `mapstructure:"token_ttl"`
		SessionTTL     time.Duration `mapstructure:"session_ttl"`
		SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	} `mapstructure:"auth"`
	Catalog struct {
		Path     string        `mapstructure:"path"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"catalog"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("auth.access_code_hash", "ACCESS_CODE_HASH")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
