package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the data directory from a .listlist config file or
// LISTLIST_* environment variables, defaulting to ~/.listlist.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.listlist.db")
	viper.SetConfigName(".listlist") // .yaml is implicit
	viper.SetEnvPrefix("LISTLIST")
	viper.AutomaticEnv()

	if override := os.Getenv("LISTLIST_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
