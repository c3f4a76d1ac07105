package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangareader/pkg/services"
	"github.com/spf13/cobra"
)

var listQuery string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all titles in the catalog",
	Long:  "Display every title in the catalog with its unlock progress",
	Run: func(cmd *cobra.Command, args []string) {
		controller := openController(cmd.Context())
		defer controller.Close()

		titles := controller.Search(listQuery)
		if len(titles) == 0 {
			fmt.Println("📚 No manga found.")
			return
		}

		columns := []table.Column{
			{Title: "ID", Width: 4},
			{Title: "Name", Width: 36},
			{Title: "Author", Width: 22},
			{Title: "Status", Width: 10},
			{Title: "Unlocked", Width: 10},
		}

		rows := []table.Row{}
		for _, title := range titles {
			unlocked, total, err := controller.TitleProgress(title.ID)
			cobra.CheckErr(err)

			rows = append(rows, table.Row{
				fmt.Sprintf("%d", title.ID),
				truncateString(title.Name, 34),
				truncateString(title.Author, 20),
				string(title.Status),
				fmt.Sprintf("%d / %d", unlocked, total),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.NoColor{}).
			Background(lipgloss.NoColor{}).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Catalog (%d titles)\n\n", len(titles))
		fmt.Println(t.View())
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "search", "s", "", "only show titles whose name or author matches")
}

func printNotification(n services.Notification) {
	icon := "ℹ️ "
	switch n.Kind {
	case services.NotifySuccess:
		icon = "✅"
	case services.NotifyError:
		icon = "❌"
	}
	fmt.Printf("%s %s\n", icon, n.Message)
}
