package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/mangareader/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(configPath); err == nil && !configForce {
			cobra.CheckErr(fmt.Errorf("%s already exists, use --force to overwrite", configPath))
		}
		cobra.CheckErr(config.DefaultConfig().Save(configPath))
		fmt.Printf("✅ Config written to %s\n", configPath)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after the file and MANGAREADER_* environment overrides are applied",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := yaml.Marshal(loadConfig())
		cobra.CheckErr(err)
		fmt.Print(string(raw))
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
