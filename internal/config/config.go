package config

import "github.com/spf13/viper"

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string `mapstructure:"SERVER_ADDRESS"`
	GeocodeBaseURL  string `mapstructure:"GEOCODE_BASE_URL"`
	GeocodeAPIKey   string `mapstructure:"GEOCODE_API_KEY"`
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`
	DefaultRegion   string `mapstructure:"DEFAULT_REGION"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
