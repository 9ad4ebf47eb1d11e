package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/db"
	"github.com/videoalert/videoalert/pkg/db/bootstrap"
	"github.com/videoalert/videoalert/pkg/server"
	"github.com/videoalert/videoalert/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return config.DefaultBindAddress
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return strconv.Itoa(config.DefaultPort)
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return config.DefaultPort
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Video Alert application server",
	Long: `Run the Video Alert application server

The database is reached via DATABASE_URL; without it a local sqlite
store is used.

By default, the database schema is created on startup if it is missing.
Use --no-init to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		applyListenFlags(settings, cmd)

		if err := settings.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		gdb, err := db.Connect(db.Config{URL: settings.DatabaseURL})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		// Create the schema unless --no-init is set
		noInit, _ := cmd.Flags().GetBool("no-init")
		if !noInit {
			log.Println("Ensuring database schema...")
			report, err := bootstrap.EnsureSchema(gdb)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Schema bootstrap failed: %v\n", err)
				os.Exit(1)
			}
			if !report.Ok() {
				fmt.Fprintf(os.Stderr, "Schema bootstrap left tables missing: %v\n", report.Missing)
				os.Exit(1)
			}
		}

		s := server.NewServer(settings, gdb)
		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s...\n", settings.ListenAddress())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	addListenFlags(serverCmd)
	serverCmd.Flags().Bool("no-init", false, "skip creating the database schema on start")
}

func addListenFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	cmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
}

// applyListenFlags overrides the listen settings only when the flag was
// passed explicitly, so file-sourced values survive a plain "server" run.
func applyListenFlags(settings *config.Settings, cmd *cobra.Command) {
	if cmd.Flags().Changed("bind-address") {
		if host, err := cmd.Flags().GetString("bind-address"); err == nil {
			settings.BindAddress = host
		}
	}
	if cmd.Flags().Changed("port") {
		if port, err := cmd.Flags().GetString("port"); err == nil {
			if p, err := strconv.Atoi(port); err == nil {
				settings.Port = p
			}
		}
	}
}
