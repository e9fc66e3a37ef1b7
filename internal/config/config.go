package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		// Driver selects the durable backend: "file" or "sqlite".
		Driver string `mapstructure:"driver"`
		Dir    string `mapstructure:"dir"`
		DBPath string `mapstructure:"db_path"`
	} `mapstructure:"storage"`
	Editor struct {
		// Autosave commits on every detected change; when false the surface
		// must call the explicit commit endpoint.
		Autosave bool `mapstructure:"autosave"`
	} `mapstructure:"editor"`
	Auth struct {
		JWTSecret         string        `mapstructure:"jwt_secret"`
		TokenLifespan     time.Duration `mapstructure:"token_lifespan"`
		OwnerEmail        string        `mapstructure:"owner_email"`
		OwnerPasswordHash string        `mapstructure:"owner_password_hash"`
	} `mapstructure:"auth"`
	Media struct {
		MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
	} `mapstructure:"media"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("storage.db_path", "./data/portfolio.db")
	viper.SetDefault("editor.autosave", true)
	viper.SetDefault("auth.token_lifespan", time.Hour)
	viper.SetDefault("media.max_upload_bytes", int64(5<<20))

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("storage.dir", "STORAGE_DIR")
	viper.BindEnv("storage.db_path", "STORAGE_DB_PATH")
	viper.BindEnv("editor.autosave", "EDITOR_AUTOSAVE")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	viper.BindEnv("auth.owner_email", "OWNER_EMAIL")
	viper.BindEnv("auth.owner_password_hash", "OWNER_PASSWORD_HASH")
	viper.BindEnv("media.max_upload_bytes", "MEDIA_MAX_UPLOAD_BYTES")
	viper.BindEnv("tracing.otlp_endpoint", "TRACING_OTLP_ENDPOINT")

	err = viper.Unmarshal(&cfg)
	return
}
