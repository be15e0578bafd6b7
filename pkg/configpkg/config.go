// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver               string `mapstructure:"DB_DRIVER"`
	DBSource               string `mapstructure:"DB_SOURCE"`
	KafkaBrokers           string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic             string `mapstructure:"KAFKA_TOPIC"`
	NettingGreedyThreshold int    `mapstructure:"NETTING_GREEDY_THRESHOLD"`
	Environment            string `mapstructure:"GO_ENV"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// BrokerList splits the comma-separated KAFKA_BROKERS value.
func (c Config) BrokerList() []string {
	if c.KafkaBrokers == "" {
		return nil
	}

	return strings.Split(c.KafkaBrokers, ",")
}
