package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/rusphonetic/internal"
	"codeberg.org/snonux/rusphonetic/internal/phonetic"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rusphonetic [word] [stress]",
		Short: "Russian Phonetic Transcription",
		Long: `rusphonetic transcribes a Russian word into the sounds it is pronounced with.

The stressed syllable is given as a number counted by vowels, or by
writing an acute accent over the stressed vowel.

Examples:
  rusphonetic молоко 3            # малако
  rusphonetic молоко́             # same, stress taken from the accent
  rusphonetic --breakdown касса 1 # show how every letter was pronounced
  rusphonetic --batch words.txt   # process "word = stress" lines from a file
  rusphonetic --history 20        # list the last 20 transcriptions
  rusphonetic --save --anki       # save words and export them for Anki`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	stateDir := defaultStateDir()

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.rusphonetic.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", filepath.Join(stateDir, "words"), "Output directory for saved words and Anki exports")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one \"word = stress\" per line)")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save every transcription into its own directory under --output")
	cmd.Flags().BoolVar(&flags.Breakdown, "breakdown", false, "Print how every letter was pronounced")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import CSV file")
	cmd.Flags().StringVar(&flags.AnkiFile, "anki-file", flags.AnkiFile, "Anki CSV file name (relative to --output)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the saved words into a timestamped archive directory and exit")

	// History flags
	cmd.Flags().StringVar(&flags.DBPath, "db", filepath.Join(stateDir, "history.db"), "History database path")
	cmd.Flags().IntVar(&flags.History, "history", 0, "List the last N transcriptions and exit")
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Do not record transcriptions in the history database")

	// Explanation flags
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Ask a language model to explain the pronunciation")
	cmd.Flags().BoolVar(&flags.Translate, "translate", false, "Ask a language model for the English translation")
	cmd.Flags().StringVar(&flags.ExplainProvider, "explain-provider", flags.ExplainProvider, "Explanation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List the models of the explanation provider and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func defaultStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "rusphonetic")
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.save", cmd.Flags().Lookup("save"))
	viper.BindPFlag("anki.file", cmd.Flags().Lookup("anki-file"))
	viper.BindPFlag("history.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("history.disabled", cmd.Flags().Lookup("no-history"))
	viper.BindPFlag("explain.enabled", cmd.Flags().Lookup("explain"))
	viper.BindPFlag("explain.translate", cmd.Flags().Lookup("translate"))
	viper.BindPFlag("explain.provider", cmd.Flags().Lookup("explain-provider"))
	viper.BindPFlag("explain.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("explain.gemini_model", cmd.Flags().Lookup("gemini-model"))
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

		// Search config in home directory with name ".rusphonetic" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rusphonetic")
	}

	// Environment variables
	viper.SetEnvPrefix("RUSPHONETIC")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies the values of the bound viper keys into flags, so
// that settings from the config file apply to flags left at their
// defaults. Explicitly set flags keep precedence.
func ApplyConfig(flags *Flags) {
	flags.OutputDir = viper.GetString("output.directory")
	flags.Save = viper.GetBool("output.save")
	flags.AnkiFile = viper.GetString("anki.file")
	flags.DBPath = viper.GetString("history.db")
	flags.NoHistory = viper.GetBool("history.disabled")
	flags.Explain = viper.GetBool("explain.enabled")
	flags.Translate = viper.GetBool("explain.translate")
	flags.ExplainProvider = viper.GetString("explain.provider")
	flags.OpenAIModel = viper.GetString("explain.openai_model")
	flags.GeminiModel = viper.GetString("explain.gemini_model")
}

// SetupLogging installs the default slog logger
func SetupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("explain.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("explain.gemini_key")
}

// ParseArgs turns the positional arguments into a word and the number of
// its stressed syllable. Without a stress argument the word must carry an
// accent over the stressed vowel.
func ParseArgs(args []string) (string, int, error) {
	switch len(args) {
	case 1:
		word, stress, ok := phonetic.ParseMarked(args[0])
		if !ok {
			return "", 0, fmt.Errorf("no stress given for %q: pass the stressed syllable number or mark the vowel with an accent", args[0])
		}
		return word, stress, nil
	case 2:
		stress, err := strconv.Atoi(args[1])
		if err != nil {
			return "", 0, fmt.Errorf("invalid stress %q: %w", args[1], err)
		}
		word, _, _ := phonetic.ParseMarked(args[0])
		return word, stress, nil
	default:
		return "", 0, fmt.Errorf("expected a word and its stressed syllable")
	}
}
