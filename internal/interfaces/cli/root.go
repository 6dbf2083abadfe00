package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/cfman/internal/infrastructure/cloudflare"
	"github.com/lite-lake/cfman/internal/infrastructure/config"
	"github.com/lite-lake/cfman/internal/infrastructure/logger"
)

var (
	apiToken    string
	configDir   string
	showVersion bool

	cfg *config.Config
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cfman",
	Short: "Cloudflare DNS management tool",
	Long:  "Cfman manages DNS zones and records through the Cloudflare API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(0)
		}

		var err error
		cfg, err = config.Load(configDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		initLogger(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiToken, "api-token", "",
		"Cloudflare API token (or set "+cloudflare.TokenEnvVar+")")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Configuration directory")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func initLogger(cfg *config.Config) {
	level := cfg.Log.Level
	format := cfg.Log.Format
	debug := os.Getenv("CFMAN_DEBUG") != ""
	if debug {
		level = "debug"
	}
	if v := os.Getenv("CFMAN_LOG_FORMAT"); v != "" {
		format = v
	}

	logger.Init(&logger.Config{
		Level:     logger.ParseLevel(level),
		Format:    format,
		AddSource: debug,
	})
}

// newGateway resolves the token and builds the API client from config.
func newGateway() (*cloudflare.Client, error) {
	token, err := cloudflare.ResolveToken(apiToken)
	if err != nil {
		return nil, err
	}
	return cloudflare.NewClient(token,
		cloudflare.WithBaseURL(cfg.API.BaseURL),
		cloudflare.WithTimeout(cfg.Timeout()),
		cloudflare.WithExportTimeout(cfg.ExportTimeout()),
	), nil
}

// fail renders a failure as a JSON error object on stderr and exits non-zero.
func fail(err error) {
	out, _ := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
	fmt.Fprintln(os.Stderr, string(out))
	os.Exit(1)
}

// echoJSON prints a provider payload indented on stdout.
func echoJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
