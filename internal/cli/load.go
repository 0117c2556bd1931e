// internal/cli/load.go
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"microtpct/internal/config"
)

// LoadConfig layers cmd's parsed flags over the environment and the
// --config file, then validates the result.
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, &config.Error{Err: err}
	}
	file, _ := cmd.Flags().GetString(FlagConfig)
	c, err := config.Load(v, file)
	if err != nil {
		return c, err
	}
	if c.Quiet {
		c.LogLevel = "error"
	}
	return c, c.Validate()
}
