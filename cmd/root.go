package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yoch/ahocora/cmd/scan"
	"github.com/yoch/ahocora/internal/pkg/logger"
	"github.com/yoch/ahocora/internal/pkg/version"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ahocora",
	Short: "ahocora matches many patterns in one pass",
	Long: `ahocora builds an Aho-Corasick automaton over a set of patterns and
reports every occurrence of every pattern, overlapping ones included,
in a single left-to-right scan of the input.`,
	Version: version.GetFullVersion(),
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommands() {
	rootCmd.AddCommand(scan.ScanCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	addSubCommands()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ahocora.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ahocora")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if viper.IsSet("log_level") && !rootCmd.PersistentFlags().Changed("log-level") {
		logLevel = viper.GetString("log_level")
	}
	logger.SetLevel(logLevel)
}
