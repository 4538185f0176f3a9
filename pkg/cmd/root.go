package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/quasar/android-useragent/pkg/app"
	"github.com/quasar/android-useragent/pkg/configuration"
)

func flagset() *pflag.FlagSet {
	flags := pflag.NewFlagSet("android-useragent", pflag.ContinueOnError)
	flags.String(configuration.ANDROID_RELEASE, "", "OS release, e.g. 4.4.2")
	flags.Int(configuration.ANDROID_SDK, 0, "SDK level of the release, e.g. 19")
	flags.String(configuration.ANDROID_MODEL, "", "device model")
	flags.String(configuration.ANDROID_BUILD_ID, "", "build identifier, e.g. KOT49H")
	flags.Bool(configuration.ANDROID_LARGE_FORM_FACTOR, false, "the device is tablet-like")
	flags.String(configuration.ENV_FILE, "", "dotenv file providing ANDROID_* variables")
	flags.String(configuration.LOG_LEVEL, "", "log level (trace,debug,info,warn,error)")
	flags.Bool(configuration.DEBUG, false, "enable debug logging")
	return flags
}

// NewRootCommand returns a command printing the user agent for the platform
// described by flags, environment and config.
func NewRootCommand(config configuration.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "android-useragent",
		Short:         "Print the user agent of an Android WebView-like client",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.AddFlagSet(cmd.Flags()); err != nil {
				return err
			}

			if envFile := config.GetString(configuration.ENV_FILE); envFile != "" {
				if err := configuration.LoadEnvFile(envFile); err != nil {
					return err
				}
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).With().Timestamp().Logger()
			engine := app.CreateAppEngineWithOptions(app.WithConfiguration(config), app.WithZeroLogger(&logger))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), engine.UserAgent())
			return err
		},
	}
	cmd.Flags().AddFlagSet(flagset())
	return cmd
}
