// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/convert"
	"github.com/pdiddy/pdf2md/internal/logging"
	"github.com/pdiddy/pdf2md/internal/mistral"
	"github.com/pdiddy/pdf2md/internal/secrets"
	"github.com/pdiddy/pdf2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd converts one PDF per invocation; there are no subcommands beyond
// version.
var rootCmd = &cobra.Command{
	Use:   "pdf2md <input>",
	Short: "Convert a PDF file or URL to Markdown using Mistral OCR",
	Long: `pdf2md converts a single PDF document into one Markdown file by sending it
to the Mistral OCR API and assembling the per-page results.

The input is either a local PDF path or a URL pointing to a PDF. URLs are
submitted to the service directly; local files are uploaded, signed, and
then processed. Extracted images are inlined as base64 data URLs unless
--inline-images=false.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")

	log := logging.New(os.Stderr, verbose).With().
		Str("run_id", uuid.NewString()).
		Logger()

	apiKeyFlag, _ := flags.GetString("api-key")
	apiKey, err := secrets.ResolveAPIKey(apiKeyFlag, loadedSecrets)
	if err != nil {
		return err
	}

	cfg := ocrConfig()
	client := mistral.New(apiKey, cfg)

	output, _ := flags.GetString("output")
	inline, _ := flags.GetBool("inline-images")
	fm, _ := flags.GetBool("frontmatter")

	opts := convert.Options{
		Output:          output,
		InlineImages:    inline,
		Frontmatter:     fm,
		SignedURLExpiry: cfg.SignedURLExpiry,
	}

	if _, err := convert.Run(cmd.Context(), client, args[0], opts, log); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2md.yaml or ~/.config/pdf2md/config.yaml)")

	rootCmd.Flags().StringP("output", "o", "", "output markdown file path (default: input name with .md extension)")
	rootCmd.Flags().StringP("api-key", "k", "", "Mistral API key (default: MISTRAL_API_KEY environment variable)")
	rootCmd.Flags().Bool("inline-images", true, "embed extracted images as base64 data URLs")
	rootCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter with source, model, and page count")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable verbose logging")

	viper.SetDefault("http.timeout", 0)
	viper.SetDefault("http.user_agent", "pdf2md/"+version)
	viper.SetDefault("ocr.model", mistral.DefaultModel)
	viper.SetDefault("ocr.base_url", mistral.DefaultBaseURL)
	viper.SetDefault("ocr.signed_url_expiry", 60)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2md"))
		}
	}

	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ocrConfig assembles the OCR stage configuration from viper.
func ocrConfig() types.OCRConfig {
	return types.OCRConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Model:           viper.GetString("ocr.model"),
		BaseURL:         viper.GetString("ocr.base_url"),
		SignedURLExpiry: viper.GetInt("ocr.signed_url_expiry"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
