package cmd

import (
	"fmt"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [title-id]",
	Short: "Export unlocked chapters to EPUB",
	Long:  "Fetch every unlocked chapter of a title and compile them into a single EPUB file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		titleID, err := strconv.Atoi(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("invalid title id %q", args[0]))
		}

		cfg := loadConfig()
		outputDir := cfg.ExportDir
		if exportDir != "" {
			outputDir = exportDir
		}

		controller := openControllerWith(cmd.Context(), cfg)
		defer controller.Close()

		chapters, err := controller.ExportableChapters(titleID)
		cobra.CheckErr(err)

		total := 0
		for _, ch := range chapters {
			total += len(ch.Pages)
		}
		if total == 0 {
			fmt.Println("🔒 No unlocked chapters to export.")
			return
		}

		bar := progressbar.NewOptions(total,
			progressbar.OptionSetDescription(fmt.Sprintf("Exporting %d chapters", len(chapters))),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)

		path, err := controller.ExportTitle(cmd.Context(), titleID, outputDir, func() {
			_ = bar.Add(1)
		})
		_ = bar.Finish()
		cobra.CheckErr(err)

		fmt.Printf("📚 EPUB written to %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "", "output directory (defaults to export_dir)")
}
