package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer             HttpServerConfig             `envconfig:"HTTP_SERVER"`
	HttpClient             HttpClientConfig             `envconfig:"HTTP_CLIENT"`
	PaymentService         PaymentServiceConfig         `envconfig:"PAYMENT_SERVICE"`
	SeatReservationService SeatReservationServiceConfig `envconfig:"SEAT_RESERVATION_SERVICE"`
	MessageStream          MessageStreamConfig          `envconfig:"MESSAGE_STREAM"`
	ApiKey                 string                       `envconfig:"API_KEY" default:"secret"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"8081"`
}

type HttpClientConfig struct {
	Type               string  `envconfig:"TYPE" default:"consecutive"`
	Timeout            int     `envconfig:"TIMEOUT" default:"5"`
	ConsecutiveFailure int64   `envconfig:"CONSECUTIVE_FAILURE" default:"5"`
	ErrorRate          float64 `envconfig:"ERROR_RATE" default:"0.1"`
	Threshold          int64   `envconfig:"THRESHOLD" default:"10"`
	MaxConcurrent      int     `envconfig:"MAX_CONCURRENT" default:"100"`
}

type PaymentServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8090"`
}

type SeatReservationServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8091"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

func InitConfig() *Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)
	return &cfg
}
