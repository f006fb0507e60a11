package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	Backend() string
	BasePath() string
	Spreadsheet() string
	CredentialsFile() string
	CredentialsJSON() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("backend", BackendLocal)
	viper.SetDefault("path", "~/.moodlog.db")
	viper.SetDefault("spreadsheet", "mood_logging")
	viper.SetConfigName(".moodlog") // .yaml is implicit
	viper.SetEnvPrefix("MOODLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		BackendName: viper.GetString("backend"),
		Path:        path,
		Sheet:       viper.GetString("spreadsheet"),
		CredsFile:   viper.GetString("credentials"),
		CredsJSON:   viper.GetString("creds_json"),
	}, nil
}

type fileConfig struct {
	BackendName string `json:"backend"`
	Path        string `json:"path"`
	Sheet       string `json:"spreadsheet"`
	CredsFile   string `json:"credentials"`
	CredsJSON   string `json:"-"`
}

func (f *fileConfig) Backend() string         { return f.BackendName }
func (f *fileConfig) BasePath() string        { return f.Path }
func (f *fileConfig) Spreadsheet() string     { return f.Sheet }
func (f *fileConfig) CredentialsFile() string { return f.CredsFile }
func (f *fileConfig) CredentialsJSON() string { return f.CredsJSON }
