package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

var (
	flagStartLat  float64
	flagStartLon  float64
	flagEndLat    float64
	flagEndLon    float64
	flagProductID string
)

var estimatesCmd = &cobra.Command{
	Use:   "estimates",
	Short: "Fetch price and pickup-time estimates for a trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := newLibrary()
		if err != nil {
			return err
		}

		start := payloads.Location{Latitude: flagStartLat, Longitude: flagStartLon}
		end := payloads.Location{Latitude: flagEndLat, Longitude: flagEndLon}

		// The two estimates are independent calls; fetch them concurrently.
		var (
			prices []*payloads.PriceEstimate
			times  []*payloads.TimeEstimate
		)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			prices, err = lib.Estimates().Price(ctx, start, end)
			return err
		})
		g.Go(func() error {
			var err error
			times, err = lib.Estimates().Time(ctx, start, flagProductID)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		etas := make(map[string]int, len(times))
		for _, t := range times {
			etas[t.ProductID] = t.Estimate
		}

		if len(prices) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no estimates available for this trip")
			return nil
		}
		for _, p := range prices {
			line := fmt.Sprintf("%s\t%s", p.DisplayName, p.Estimate)
			if eta, ok := etas[p.ProductID]; ok {
				line += fmt.Sprintf("\tpickup in %s", time.Duration(eta)*time.Second)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	estimatesCmd.Flags().Float64Var(&flagStartLat, "start-lat", 0, "pickup latitude")
	estimatesCmd.Flags().Float64Var(&flagStartLon, "start-lon", 0, "pickup longitude")
	estimatesCmd.Flags().Float64Var(&flagEndLat, "end-lat", 0, "dropoff latitude")
	estimatesCmd.Flags().Float64Var(&flagEndLon, "end-lon", 0, "dropoff longitude")
	estimatesCmd.Flags().StringVar(&flagProductID, "product", "", "narrow the ETA to one product")
	_ = estimatesCmd.MarkFlagRequired("start-lat")
	_ = estimatesCmd.MarkFlagRequired("start-lon")
	_ = estimatesCmd.MarkFlagRequired("end-lat")
	_ = estimatesCmd.MarkFlagRequired("end-lon")
}
