package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio. Se lee una sola vez al
// arrancar el proceso y se pasa como valor inmutable a los constructores.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"12345"`
	DatabaseURL        string        `env:"DATABASE_URL,required"`
	FrontendURL        string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	GoogleTokenInfoURL string        `env:"GOOGLE_TOKENINFO_URL" envDefault:"https://oauth2.googleapis.com/tokeninfo"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
