package internal

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port              int           `env:"PORT,default=12345" validate:"min=0,max=65535"`
	AdminPort         int           `env:"ADMIN_PORT,default=0" validate:"min=0,max=65535"`
	GrpcHealthPort    int           `env:"GRPC_HEALTH_PORT,default=0" validate:"min=0,max=65535"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT,default=0s" validate:"gte=0"`
	MaxLineLength     int           `env:"MAX_LINE_LENGTH,default=4096" validate:"min=16"`
	MaxNicknameLength int           `env:"MAX_NICKNAME_LENGTH,default=32" validate:"min=1"`
	CensoredWordsDir  string        `env:"CENSORED_WORDS_DIR"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
}

// LoadConfig reads the environment, applies defaults and checks ranges.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

// Address joins HOST with the given port.
func (c Config) Address(port int) string {
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
