package cmd

import (
	"fmt"

	"github.com/kerbaras/mangareader/pkg/reader"
	"github.com/kerbaras/mangareader/pkg/services"
	"github.com/spf13/cobra"
)

var (
	prefsTheme     string
	prefsFit       string
	prefsDirection string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change reading preferences",
	Long:  "Show the stored theme, fit mode and reading direction, or change them with flags",
	Run: func(cmd *cobra.Command, args []string) {
		controller := openController(cmd.Context())
		defer controller.Close()
		prefs := controller.Preferences()

		if prefsTheme != "" {
			theme, err := services.ParseTheme(prefsTheme)
			cobra.CheckErr(err)
			cobra.CheckErr(prefs.SetTheme(theme))
		}
		if prefsFit != "" {
			fit, err := reader.ParseFitMode(prefsFit)
			cobra.CheckErr(err)
			cobra.CheckErr(prefs.SetFitMode(fit))
		}
		if prefsDirection != "" {
			dir, err := reader.ParseDirection(prefsDirection)
			cobra.CheckErr(err)
			cobra.CheckErr(prefs.SetDirection(dir))
		}

		fmt.Printf("theme:      %s\n", prefs.Theme())
		fmt.Printf("fit mode:   %s\n", prefs.FitMode())
		fmt.Printf("direction:  %s\n", prefs.Direction())
	},
}

func init() {
	prefsCmd.Flags().StringVar(&prefsTheme, "theme", "", "dark or light")
	prefsCmd.Flags().StringVar(&prefsFit, "fit", "", "width, height or both")
	prefsCmd.Flags().StringVar(&prefsDirection, "direction", "", "ltr or rtl")
}
