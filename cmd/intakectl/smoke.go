package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byword/intake-api/pkg/connector"
)

var errSmokeFailed = errors.New("one or more endpoints failed")

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Call /health, /api/status and /api/contact once each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := newClient().Smoke(cmd.Context())
		out := cmd.OutOrStdout()
		for _, r := range results {
			switch r.State {
			case connector.SmokeWorking:
				fmt.Fprintf(out, "ok     %-4s %s\n", r.Method, r.Path)
			case connector.SmokeIssue:
				fmt.Fprintf(out, "issue  %-4s %s (status %d)\n", r.Method, r.Path, r.StatusCode)
			default:
				fmt.Fprintf(out, "error  %-4s %s: %v\n", r.Method, r.Path, r.Err)
			}
		}
		if !connector.AllWorking(results) {
			return errSmokeFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(smokeCmd)
}
