package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() (string, error)
}

// LoadConfig resolves the board directory from a .tempo config file or the
// TEMPO_PATH environment variable, defaulting to ~/.tempo.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.tempo.db")
	viper.SetConfigName(".tempo") // .yaml is implicit
	viper.SetEnvPrefix("TEMPO")
	viper.AutomaticEnv()

	if override := os.Getenv("TEMPO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() (string, error) {
	return homedir.Expand(f.Path)
}
