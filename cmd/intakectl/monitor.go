package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/byword/intake-api/pkg/connector"
)

var (
	monitorInterval time.Duration
	monitorCount    int
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Probe /health repeatedly and print each result",
	Long: `Probe GET /health every --interval until interrupted.

Each line reports "service healthy", "service issue: <status>" or "service down: <error>".
Use --count to stop after a fixed number of probes.`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorInterval, "interval", connector.DefaultMonitorInterval, "Time between probes")
	monitorCmd.Flags().IntVar(&monitorCount, "count", 0, "Stop after this many probes (0 = run until interrupted)")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	n := 0
	return newClient().Monitor(ctx, monitorInterval, func(p connector.Probe) {
		n++
		fmt.Fprintf(out, "%s %s\n", p.At.Format(time.RFC3339), p)
		if monitorCount > 0 && n >= monitorCount {
			cancel()
		}
	})
}
