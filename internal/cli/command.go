package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/saypyu/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "saypyu [ipa]",
		Short: "IPA to SaypYu transliterator",
		Long: `saypyu converts IPA pronunciations into SaypYu, a phonetic
spelling that only uses plain Latin letters plus ɘ.

English words can be looked up through OpenAI or espeak-ng, and the
results are cached locally.

Examples:
  saypyu krʌˈsteɪʃən                  # Print "krɘsteyshɘn"
  saypyu --explain 'bˈd'              # Show which characters get dropped
  saypyu -w crustacean                # Look up the IPA of an English word
  saypyu --batch words.txt            # Convert a whole file
  saypyu --fixture ipa_to_saypyu.test # Run the self-test fixture
  echo 'tʃɜːtʃ' | saypyu --stdin      # Stream stdin to stdout`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(home, ".local", "state", "saypyu")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.saypyu.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", filepath.Join(stateDir, "output"), "Output directory")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process IPA strings from file (one per line, optionally 'label = ipa')")
	cmd.Flags().StringVar(&flags.FixtureFile, "fixture", "", "Run the transliteration fixture in the given file")
	cmd.Flags().BoolVar(&flags.Stdin, "stdin", false, "Transliterate standard input to standard output")
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "List the characters of the input that have no SaypYu equivalent")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the output directory into a timestamped archive")

	// Word lookup flags
	cmd.Flags().StringVarP(&flags.Word, "word", "w", "", "Look up the IPA of an English word and transliterate it")
	cmd.Flags().StringVar(&flags.Source, "source", flags.Source, "Phonetic source: openai, espeak or auto")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for IPA lookups")
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "espeak-ng voice used for IPA lookups")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List the OpenAI chat models available for the current API key")

	// Cache flags
	cmd.Flags().StringVar(&flags.CachePath, "cache", filepath.Join(stateDir, "cache.db"), "SQLite cache of looked-up words")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Do not read or write the word cache")
	cmd.Flags().BoolVar(&flags.ListCache, "list-cache", false, "List all cached words")
	cmd.Flags().StringVar(&flags.Forget, "forget", "", "Remove a word from the cache")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("phonetic.source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("phonetic.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("phonetic.espeak_voice", cmd.Flags().Lookup("espeak-voice"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("cache.disabled", cmd.Flags().Lookup("no-cache"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".saypyu" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".saypyu")
	}

	// Environment variables
	viper.SetEnvPrefix("SAYPYU")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("phonetic.openai_key")
}
