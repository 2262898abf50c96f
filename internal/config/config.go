package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidMark = errors.New("invalid player mark")

// reserved values cannot be used as marks: the empty cell and the draw winner.
var reservedMarks = map[string]struct{}{"": {}, "-": {}}

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Seed         int64  `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	HumanMark    string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
	ComputerMark string `yaml:"computer-mark" env:"TICTACTOE_COMPUTER_MARK" env-default:"O"`
	Redis        Redis  `yaml:"redis" env-prefix:"TICTACTOE_REDIS_"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	marks := []struct {
		name  string
		value string
	}{
		{name: "human-mark", value: that.HumanMark},
		{name: "computer-mark", value: that.ComputerMark},
	}

	for _, mark := range marks {
		if err := validateMark(mark.value); err != nil {
			return fmt.Errorf("%s: %w", mark.name, err)
		}
	}

	if that.HumanMark == that.ComputerMark {
		return fmt.Errorf("%w: both players use %q", ErrInvalidMark, that.HumanMark)
	}

	return nil
}

func validateMark(mark string) error {
	if _, ok := reservedMarks[mark]; ok {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidMark, mark)
	}

	if utf8.RuneCountInString(mark) != 1 || strings.TrimSpace(mark) == "" {
		return fmt.Errorf("%w: %q must be a single visible character", ErrInvalidMark, mark)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
