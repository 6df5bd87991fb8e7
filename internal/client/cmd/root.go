package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"simplesocial/internal/client/api"
	"simplesocial/internal/client/session"
	"simplesocial/internal/client/ui"
)

func defaultServerURL() string {
	if v, ok := os.LookupEnv("SIMPLESOCIAL_SERVER_URL"); ok && v != "" {
		return v
	}
	return "http://localhost:8000"
}

func NewRootCmd(version, buildDate string) *cobra.Command {
	var serverURL string
	root := &cobra.Command{
		Use:   "simplesocial",
		Short: "Simple Social terminal client",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A fresh session per run: the client never persists
			// tokens, every launch starts at the login page.
			return ui.Run(api.New(serverURL), session.New())
		},
	}
	root.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(), "API base URL")

	root.AddCommand(newVersionCmd(version, buildDate))
	return root
}
