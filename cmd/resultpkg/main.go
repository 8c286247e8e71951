package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ib-77/result/internal/logger"
)

var (
	logLevel string
	workers  int
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "resultpkg",
		Short: "Inspect and validate package manifests",
		Long: `resultpkg checks package manifests: identity, version and index
metadata. Manifests are YAML documents using the setup script field names.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.New(logLevel)
			if err != nil {
				return err
			}
			logger.Init(l)
			return nil
		},
	}

	// accept --log_level as well as --log-level
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 4, "number of manifests checked concurrently")

	rootCmd.AddCommand(createValidateCommand())
	rootCmd.AddCommand(createShowCommand())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
