package cmd

import (
	"context"
	"os"

	"github.com/kerbaras/mangareader/pkg/app"
	"github.com/kerbaras/mangareader/pkg/config"
	"github.com/kerbaras/mangareader/pkg/services"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mangareader",
	Short: "Read manga in your terminal",
	Long:  "Browse a manga catalog, redeem unlock codes and read chapters in a TUI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(loadConfig())
		if err := a.Run(cmd.Context()); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	cobra.CheckErr(err)
	cobra.CheckErr(cfg.Validate())
	return cfg
}

// openController loads the config, the store and the catalog. A catalog
// that fails to load is reported on stderr and the fallback is used.
func openController(ctx context.Context) *services.MangaController {
	return openControllerWith(ctx, loadConfig())
}

func openControllerWith(ctx context.Context, cfg *config.Config) *services.MangaController {
	controller, err := services.NewMangaControllerFromConfig(ctx, cfg)
	cobra.CheckErr(err)

	select {
	case n := <-controller.Notifications():
		printNotification(n)
	default:
	}
	return controller
}

func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
