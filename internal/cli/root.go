// Package cli implements the rides command, a small front end over the SDK
// for poking the API from a terminal.
package cli

import (
	"github.com/spf13/cobra"

	rides "github.com/voyago/rides-go-sdk"
	"github.com/voyago/rides-go-sdk/pkg/config"
	"github.com/voyago/rides-go-sdk/pkg/services/library"
)

var (
	flagToken   string
	flagRegion  string
	flagSandbox bool
)

var rootCmd = &cobra.Command{
	Use:          "rides",
	Short:        "Explore the Voyago rides API from the command line",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "",
		"server token (defaults to RIDES_SERVER_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "",
		"region to target: default or china (defaults to RIDES_REGION)")
	rootCmd.PersistentFlags().BoolVar(&flagSandbox, "sandbox", false,
		"route requests to the sandbox environment")

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(estimatesCmd)
}

// newLibrary builds a configured SDK client, letting flags override the
// environment-derived configuration.
func newLibrary() (library.Library, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if flagToken != "" {
		cfg.SetServerToken(flagToken)
	}
	if flagRegion != "" {
		region, err := config.ParseRegion(flagRegion)
		if err != nil {
			return nil, err
		}
		cfg.SetRegion(region)
	}
	if flagSandbox {
		cfg.SetSandbox(true)
	}

	return rides.New(cfg)
}
