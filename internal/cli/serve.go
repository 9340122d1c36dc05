package cli

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/questlog/internal/config"
	"github.com/example/questlog/internal/wire"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addrFlag, _ := cmd.Flags().GetString("addr")
		addr := config.Listen(addrFlag)

		logger := log.New(os.Stderr, "questlog: ", log.LstdFlags)
		server := &http.Server{
			Addr:    addr,
			Handler: wire.HTTPServer(logger).Handler(),
		}

		fmt.Printf("Listening on %s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (defaults to configured address)")
}

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return serveCmd
}
