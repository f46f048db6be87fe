package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudbread0714/tayo-taxi-user/internal/adapter/device"
	"github.com/cloudbread0714/tayo-taxi-user/internal/adapter/mapbox"
	"github.com/cloudbread0714/tayo-taxi-user/internal/adapter/notify"
	"github.com/cloudbread0714/tayo-taxi-user/internal/config"
	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
	"github.com/cloudbread0714/tayo-taxi-user/internal/pipeline"
	"github.com/spf13/cobra"
)

type options struct {
	serviceEnabled bool
	permission     string
	requestResult  string
	lat, lon       float64
	hasPosition    bool
	positionError  string
	destination    string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rider",
		Short: "Resolve a rider's origin and hand a destination to the pickup flow",
		Long: `
rider simulates one activation of the trip-start screen: it checks location
permission, reads the reported position, reverse geocodes it into an origin
address and, when a destination is given, forward geocodes it and prints the
pickup handoff.
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if latSet != lonSet {
				return fmt.Errorf("--lat and --lon must be given together")
			}
			opts.hasPosition = latSet

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newStderrLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			metrics := observability.NewMetrics()

			client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, mapbox.Options{
				Language:          cfg.MapboxLanguage,
				Country:           cfg.MapboxCountry,
				RequestsPerSecond: cfg.MapboxRPS,
			}, metrics, logger)

			return run(cmd.Context(), cmd.OutOrStdout(), client, opts, logger, metrics)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.serviceEnabled, "service-enabled", true, "whether device location services are on")
	f.StringVar(&opts.permission, "permission", "not_determined", "current permission: not_determined, denied, denied_forever, granted")
	f.StringVar(&opts.requestResult, "request-result", "denied", "answer to the permission prompt, if one is shown")
	f.Float64Var(&opts.lat, "lat", 0, "reported latitude")
	f.Float64Var(&opts.lon, "lon", 0, "reported longitude")
	f.StringVar(&opts.positionError, "position-error", "", "make the position read fail with this message")
	f.StringVar(&opts.destination, "destination", "", "destination text entered by the rider")

	return cmd
}

// stdoutPickup stands in for the pickup flow by printing the payload.
type stdoutPickup struct {
	out io.Writer
}

func (p stdoutPickup) StartPickup(_ context.Context, payload domain.HandoffPayload) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func run(ctx context.Context, out io.Writer, geocoder domain.Geocoder, opts options, logger *slog.Logger, metrics *observability.Metrics) error {
	perm, err := domain.ParsePermissionState(opts.permission)
	if err != nil {
		return err
	}
	result, err := domain.ParsePermissionState(opts.requestResult)
	if err != nil {
		return err
	}

	snap := device.Snapshot{
		ServiceEnabled: opts.serviceEnabled,
		Permission:     perm,
		RequestResult:  result,
		PositionError:  opts.positionError,
	}
	if opts.hasPosition {
		snap.Position = &domain.GeoPoint{Latitude: opts.lat, Longitude: opts.lon}
	}

	recorder := &notify.Recorder{}
	flow := pipeline.NewFlow(geocoder, stdoutPickup{out: out}, logger, metrics)
	session := flow.NewSession(device.NewReported(snap), recorder)
	defer session.Close()

	origin := session.Activate(ctx)
	fmt.Fprintf(out, "출발지: %s\n", origin.DisplayText())

	session.Submit(ctx, domain.DestinationQuery{RawText: opts.destination})
	for _, n := range recorder.Notices() {
		fmt.Fprintf(out, "알림: %s\n", n)
	}
	return nil
}
