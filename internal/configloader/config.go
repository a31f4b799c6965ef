package configloader

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel string `mapstructure:"LOG_LEVEL"` // logrus library log level to be assigned
}

// Initialize default parameters values
func initDefaultConfiguration(loader *viper.Viper) {
	loader.SetDefault("LOG_LEVEL", "error")
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	loader := viper.New()
	initDefaultConfiguration(loader)

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		loader.AddConfigPath(filepath.Join(root, "etc", applicationName))
		loader.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		loader.AddConfigPath(".")
		loader.SetConfigName("config")
		loader.SetConfigType("yaml")
	} else {
		loader.SetConfigFile(configurationFilePath)
	}

	loader.AutomaticEnv()

	// A missing configuration file leaves the defaults in place
	if configError := loader.ReadInConfig(); configError != nil {
		logrus.Debug(configError.Error())
	}
	if err = loader.Unmarshal(&config); err != nil {
		err = goerr.Wrap(err, "cannot decode configuration", goerr.V("path", configurationFilePath))
	}

	return
}

// Level parses the configured log level
func (config Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return level, goerr.Wrap(err, "invalid log level", goerr.V("level", config.LogLevel))
	}
	return level, nil
}
