package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/billfold/billfold/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server  ServerConfig  `validate:"required"`
	Logging LoggingConfig `validate:"required"`
	PDF     PDFConfig     `validate:"required"`
	Assets  AssetsConfig  `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// PDFConfig holds the fixed page geometry used by the rendering engine.
// Units are points; defaults describe an A4 page with a 20pt margin.
type PDFConfig struct {
	PageWidth  float64 `mapstructure:"page_width" validate:"required,gt=0"`
	PageHeight float64 `mapstructure:"page_height" validate:"required,gt=0"`
	Margin     float64 `mapstructure:"margin" validate:"required,gt=0"`
	FontFamily string  `mapstructure:"font_family" validate:"required"`
}

type AssetsConfig struct {
	// LogoFetchTimeout bounds the remote logo fetch. A fetch that exceeds
	// it resolves to a no-logo render rather than an error.
	LogoFetchTimeout time.Duration `mapstructure:"logo_fetch_timeout" validate:"required"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/billfold")

	v.SetEnvPrefix("BILLFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Defaults keep the engine usable with no config file at all
	def := GetDefaultConfig()
	v.SetDefault("server.address", def.Server.Address)
	v.SetDefault("logging.level", string(def.Logging.Level))
	v.SetDefault("pdf.page_width", def.PDF.PageWidth)
	v.SetDefault("pdf.page_height", def.PDF.PageHeight)
	v.SetDefault("pdf.margin", def.PDF.Margin)
	v.SetDefault("pdf.font_family", def.PDF.FontFamily)
	v.SetDefault("assets.logo_fetch_timeout", def.Assets.LogoFetchTimeout)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or other non-web applications.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		PDF: PDFConfig{
			PageWidth:  595.28,
			PageHeight: 841.89,
			Margin:     20,
			FontFamily: "Helvetica",
		},
		Assets: AssetsConfig{LogoFetchTimeout: 10 * time.Second},
	}
}
