package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"location-proxy/internal/locationstate"
	"location-proxy/internal/logger"
	"location-proxy/internal/models"

	"github.com/spf13/cobra"
)

const exampleUsage = `  locate --lat 40.7128 --lng -74.0060
  locate --api https://maps.example.com --lat 35.681236 --lng 139.767125`

// errAbsent is returned when no location could be resolved.
var errAbsent = errors.New("no location resolved")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL   string
		lat, lng float64
		timeout  time.Duration
		logLevel string
	)

	root := &cobra.Command{
		Use:          "locate",
		Short:        "Resolve a coordinate pair to an address through the location proxy",
		Example:      exampleUsage,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			state := locationstate.New(apiURL,
				locationstate.WithLogger(logger.New(cmd.ErrOrStderr(), "development", logLevel)))
			return run(ctx, cmd.OutOrStdout(), state, lat, lng)
		},
	}

	root.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the location proxy API")
	root.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees")
	root.Flags().Float64Var(&lng, "lng", 0, "Longitude in degrees")
	root.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 waits indefinitely)")
	root.Flags().StringVar(&logLevel, "log-level", "error", "Log level for diagnostics on stderr")
	_ = root.MarkFlagRequired("lat")
	_ = root.MarkFlagRequired("lng")

	return root
}

// run prints every value the state takes while resolving lat/lng and fails when it ends absent.
func run(ctx context.Context, out io.Writer, state *locationstate.State, lat, lng float64) error {
	unsubscribe := state.Subscribe(func(location *models.Location) {
		if location == nil {
			fmt.Fprintln(out, "location: absent")
			return
		}
		fmt.Fprintf(out, "location: %s (%v, %v)\n", location.Address, location.Lat, location.Lng)
	})
	defer unsubscribe()

	if err := state.Resolve(ctx, lat, lng); err != nil {
		return fmt.Errorf("%w: %v", errAbsent, err)
	}
	if state.Current() == nil {
		return errAbsent
	}
	return nil
}
