package main

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/byword/intake-api/pkg/connector"
)

const defaultAPIURL = "http://localhost:8080"

var (
	apiURL     string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "intakectl",
	Short: "Client for the Byword intake API",
	Long: `intakectl checks, monitors and submits forms to a running intake API.

The API root is taken from --url, then $INTAKE_API_URL, then ` + defaultAPIURL + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "API root URL (default $INTAKE_API_URL or "+defaultAPIURL+")")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", connector.DefaultTimeout, "Per-request timeout")
}

// resolveURL applies flag > env > default precedence.
func resolveURL() string {
	if apiURL != "" {
		return apiURL
	}
	if env := os.Getenv("INTAKE_API_URL"); env != "" {
		return env
	}
	return defaultAPIURL
}

func newClient() *connector.Client {
	return connector.New(resolveURL(), connector.WithHTTPClient(&http.Client{Timeout: apiTimeout}))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
