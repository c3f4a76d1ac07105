package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kerbaras/mangareader/pkg/sources"
	"github.com/spf13/cobra"
)

var (
	scanBaseURL string
	scanOutput  string
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Build a catalog document from a directory of images",
	Long: `Walk <dir>/<title>/<chapter>/<page> and write the matching catalog JSON.
An optional info.json in a title directory supplies metadata and unlock codes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := sources.NewDirectorySource(args[0], scanBaseURL)
		catalog, err := src.Load(cmd.Context())
		cobra.CheckErr(err)

		out := os.Stdout
		if scanOutput != "" {
			cobra.CheckErr(os.MkdirAll(filepath.Dir(scanOutput), 0755))
			f, err := os.Create(scanOutput)
			cobra.CheckErr(err)
			defer f.Close()
			out = f
		}

		cobra.CheckErr(catalog.Encode(out))

		if scanOutput != "" {
			chapters := 0
			for _, t := range catalog.Titles {
				chapters += len(t.Chapters)
			}
			fmt.Fprintf(os.Stderr, "✅ %d titles, %d chapters written to %s\n", len(catalog.Titles), chapters, scanOutput)
		}
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanBaseURL, "base-url", "", "prefix for page references instead of local paths")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write to a file instead of stdout")
}
