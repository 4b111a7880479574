package main

import (
	"os"

	"doctor-directory/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "doctor-directory",
		Short:        "Searchable doctor directory with shareable filter URLs",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	})
	root.AddCommand(newSearchCommand())

	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize application with all dependencies
	app, err := bootstrap.New(os.Stdout)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	app.Run()
	return nil
}
