package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kerbaras/mangareader/pkg/server"
	"github.com/kerbaras/mangareader/pkg/services"
	"github.com/kerbaras/mangareader/pkg/sources"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and page images over HTTP",
	Long: `Serve a catalog document at /data/manga-data.json and the files under the
serve root, so other readers can point catalog.location at this server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if serveAddr != "" {
			cfg.Serve.Addr = serveAddr
		}
		if serveRoot != "" {
			cfg.Serve.Root = serveRoot
		}

		catalog, err := sources.LoadOrFallback(cmd.Context(), services.CatalogSource(cfg))
		if err != nil {
			log.Printf("⚠️  %v, serving fallback catalog", err)
		}

		srv := server.New(cfg.Serve, catalog)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}()

		log.Printf("📡 Serving %d titles on %s", len(catalog.Titles), cfg.Serve.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to serve.addr)")
	serveCmd.Flags().StringVar(&serveRoot, "root", "", "directory of page images (defaults to serve.root)")
}
