package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"text2phenotype.com/absa/logger"
)

type Config struct {
	ConfigPath          string `envconfig:"ABSA_CONFIG_PATH" default:"configs"`
	DictionaryPath      string `envconfig:"ABSA_DICTIONARY_PATH" default:"dictionaries"`
	CachePath           string `envconfig:"ABSA_CACHE_PATH" default:""`
	SentenceModel       string `envconfig:"ABSA_SENTENCE_MODEL" default:""`
	LemmatizerResources string `envconfig:"ABSA_LEMMATIZER_RESOURCES" default:""`
	LexiconPath         string `envconfig:"ABSA_SENTIMENT_LEXICON" default:""`
	RestAPIActive       bool   `envconfig:"ABSA_REST_API_ACTIVE" default:"false"`
	RestAPIPort         string `envconfig:"ABSA_REST_API_PORT" default:"10000"`
	WorkerActive        bool   `envconfig:"ABSA_WORKER_ACTIVE" default:"true"`
}

var (
	envFile string
	format  string
	config  Config
)

var rootCmd = &cobra.Command{
	Use:   "absa",
	Short: "Aspect based sentiment analysis",
	Long: `absa finds aspect keywords in text, scores the clause that governs
each keyword and summarizes the scores per aspect.

Aspects and their keywords come from YAML configurations. Every
configuration is one named result section.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetupLogging()
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
		if err := envconfig.Process("", &config); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this dotenv file first")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "Output format: table, csv or json. json is a single document even for several files")

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(sentimentCmd)
	rootCmd.AddCommand(aspectsCmd)
	rootCmd.AddCommand(buildIndexCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(superviseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
