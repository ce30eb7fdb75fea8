// Package commands implements the CLI commands for tidypost.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tidypost",
	Short: "LLM-powered grammar cleanup for blog post collections",
	Long: `Tidypost runs a collection of blog posts through an LLM copy
editor: titles and bodies get typo, punctuation, and quote fixes, and
bodies are re-segmented into paragraphs.

Progress is checkpointed after every post, so an interrupted run can be
restarted and picks up where it left off without repeating API calls.

Examples:
  # Clean a collection with Anthropic (reads ANTHROPIC_API_KEY)
  tidypost clean -i posts.json -o cleaned.json

  # Use OpenAI with a specific model
  tidypost clean -i posts.json -p openai -m gpt-4o-mini

  # Resume an interrupted run (same command, same progress file)
  tidypost clean -i posts.json -o cleaned.json`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.tidypost.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".tidypost")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("TIDYPOST")
	viper.AutomaticEnv()

	// Also check common API key env vars
	_ = viper.BindEnv("api_key", "ANTHROPIC_API_KEY", "OPENAI_API_KEY")

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
