/*
Copyright © 2026 Erik Juhani
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "droll",
	Short: "Parse dice notation and print the result",
	Long: `droll evaluates dice-notation expressions such as 2d20+10-2 or d6.

The notation is tokenized, parsed under an operator-precedence grammar and
evaluated with uniform random draws for each die.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.droll.yaml)")
	rootCmd.PersistentFlags().StringP("macros", "m", "", "YAML file with named roll macros")
	if err := viper.BindPFlag("macros", rootCmd.PersistentFlags().Lookup("macros")); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".droll")
	}

	viper.SetEnvPrefix("droll")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
