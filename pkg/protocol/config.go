package protocol

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"

	"github.com/tradewire/protocol/pkg/log"
)

const (
	configDirPathEnv     = "CLIENT_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config is the environment-driven client configuration. It covers the
// ambient concerns of the core (logging, keyfile location, config
// directory); transport endpoints belong to the external transport layer.
type Config struct {
	Log         log.Config
	KeyfilePath string `env:"CLIENT_KEYFILE_PATH"`
	ConfigDir   string
}

// LoadConfig builds configuration from environment variables, loading a
// .env file from the config directory first when one exists.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.NewSystem("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	dotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(dotEnvPath); err != nil {
		logger.Warn(".env file not found", "path", dotEnvPath)
	}

	var conf Config
	conf.ConfigDir = configDirPath
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read client config from env")
	}
	if err := cleanenv.ReadEnv(&conf.Log); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read log config from env")
	}
	logger.Info("client config loaded", "configDir", configDirPath, "logFormat", conf.Log.Format)

	return &conf, nil
}
