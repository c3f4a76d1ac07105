package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [title-id]",
	Short: "List the chapters of a title",
	Long:  "Show every chapter of a title with its lock state and page count",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		titleID, err := strconv.Atoi(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("invalid title id %q", args[0]))
		}

		controller := openController(cmd.Context())
		defer controller.Close()

		title := controller.Catalog().Title(titleID)
		if title == nil {
			cobra.CheckErr(fmt.Errorf("title %d not found", titleID))
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Chapter", "Pages", "Date", "")

		for _, ch := range title.Chapters {
			state := "🔒 locked"
			if controller.IsUnlocked(title.ID, ch.ID) {
				state = "📖 unlocked"
			}
			t.Row(strconv.Itoa(ch.ID), truncateString(ch.DisplayName(), 48), strconv.Itoa(len(ch.Pages)), ch.Date, state)
		}

		fmt.Printf("\n📖 %s\n", title.Name)
		fmt.Println(t)
	},
}
