package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"pickem-tracker/internal/apierror"
	fxmodules "pickem-tracker/internal/fx"
)

var isDebug bool

var rootCmd = &cobra.Command{
	Use:           "pickem",
	Short:         "CS2 tournament Pick'Em tracker",
	Long:          `Track CS2 major Pick'Em predictions: view brackets, calculate scores and submit picks from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apierror.Convert(err).Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(fantasyCmd)
}

// runApp builds a one-shot fx app and fills targets from the dependency
// graph. The returned stop function must be deferred by the caller.
func runApp(ctx context.Context, targets ...any) (func(), error) {
	opts := []fx.Option{fxmodules.Module, fx.NopLogger}
	if isDebug {
		opts = append(opts, fx.Decorate(func(l zerolog.Logger) zerolog.Logger {
			return l.Level(zerolog.DebugLevel)
		}))
	}
	for _, target := range targets {
		opts = append(opts, fx.Populate(target))
	}

	app := fx.New(opts...)
	if err := app.Start(ctx); err != nil {
		return nil, err
	}
	return func() { _ = app.Stop(ctx) }, nil
}
