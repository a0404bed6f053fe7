// Package cli implements the p2h command line client. It talks to the
// same backend as the web UI through the shared API client and keeps
// its session in ~/.p2h/credentials.json.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/me/p2h/internal/api"
	"github.com/me/p2h/internal/logging"
	"github.com/me/p2h/internal/session"
	"github.com/spf13/cobra"
)

var (
	flagAPI         string
	flagCredentials string
	flagDebug       bool
	flagLogLevel    string
	flagLogFormat   string

	logger *slog.Logger
	creds  session.Store
	client *api.Client
)

// defaultAPI returns the backend base URL, checking P2H_API_URL first.
func defaultAPI() string {
	if s := os.Getenv("P2H_API_URL"); s != "" {
		return s
	}
	return "http://localhost:8000"
}

// NewRootCmd creates the root cobra command for the p2h CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "p2h",
		Short: "p2h - vehicle pre-use inspection client",
		Long:  "p2h submits and reviews daily vehicle inspections (Pemeriksaan dan Pengecekan Harian).",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)

			path := flagCredentials
			if path == "" {
				p, err := session.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			store := session.NewFileStore(path)
			creds = store

			client = api.NewClient(flagAPI, logger)
			client.TokenSource = func() string {
				return store.Read().Token
			}
			client.OnAuthFailure = func() {
				// Forced logout: drop the stored credential so the next
				// command starts anonymous.
				if err := store.Clear(); err != nil {
					logger.Error("clear credentials", "error", err)
				}
				fmt.Fprintln(os.Stderr, "Sesi Anda telah berakhir. Silakan login kembali.")
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", defaultAPI(), "P2H API base URL (or P2H_API_URL env)")
	root.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "Credentials file (default ~/.p2h/credentials.json)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newVehiclesCmd(),
		newReportsCmd(),
		newMonitorCmd(),
		newSubmitCmd(),
	)

	return root
}
