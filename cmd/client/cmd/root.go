// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"healthsync/cmd/client/cmd/auth"
	"healthsync/cmd/client/cmd/events"
	"healthsync/cmd/client/cmd/profile"
	"healthsync/cmd/client/cmd/share"
	"healthsync/cmd/client/cmd/tips"
	"healthsync/cmd/client/cmd/travel"
	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
	"healthsync/internal/app/client/config"
	"healthsync/internal/utils/logger"
)

var (
	cfg     *config.Config
	log     *slog.Logger
	app     *client.App
	baseURL string
)

var rootCmd = &cobra.Command{
	Use:   "healthsync",
	Short: "HealthSync - your personal health record",
	Long: `HealthSync keeps a personal health timeline on your own machine:
vaccinations, doctor visits, diseases, medications and measurements,
grouped by the age they happened at.

A read-only snapshot of your record can be shared as a compressed link
or QR code; the data travels inside the link itself and is never stored
on any server.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "base URL used when building share links")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(events.EventsCmd)
	rootCmd.AddCommand(profile.ProfileCmd)
	rootCmd.AddCommand(travel.TravelCmd)
	rootCmd.AddCommand(share.ShareCmd)
	rootCmd.AddCommand(tips.TipsCmd)
}
