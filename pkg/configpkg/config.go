// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	Environment      string `mapstructure:"GO_ENV"`
	BranchCode       int    `mapstructure:"BRANCH_CODE"`
	OverdraftLimit   string `mapstructure:"OVERDRAFT_LIMIT"`
	WithdrawalLimit  int    `mapstructure:"WITHDRAWAL_LIMIT"`
	MetricsNamespace string `mapstructure:"METRICS_NAMESPACE"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("BRANCH_CODE", 1004)
	v.SetDefault("OVERDRAFT_LIMIT", "500")
	v.SetDefault("WITHDRAWAL_LIMIT", 3)
	v.SetDefault("METRICS_NAMESPACE", "ledger")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
