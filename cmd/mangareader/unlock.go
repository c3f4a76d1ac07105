package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/mangareader/pkg/services"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock [code]",
	Short: "Redeem an unlock code",
	Long:  "Unlock a chapter with its code. Without an argument the code is asked for interactively.",
	Args:  cobra.MaximumNArgs(1),
	// The failure is already printed as a notification.
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller := openController(cmd.Context())
		defer controller.Close()

		code := ""
		if len(args) == 1 {
			code = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Unlock code",
				Validate: func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter a code")
					}
					return nil
				},
			}
			var err error
			code, err = prompt.Run()
			if err != nil {
				cobra.CheckErr(fmt.Errorf("unlock code: %w", err))
			}
		}

		return redeem(controller, code)
	},
}

// redeem prints the outcome of a code and returns the failure, if any, so
// the command exits non-zero.
func redeem(controller *services.MangaController, code string) error {
	res, err := controller.Redeem(code)
	printNotification(<-controller.Notifications())
	if err != nil {
		return err
	}
	fmt.Printf("📖 %s • %s is ready to read\n", res.TitleName, res.Label)
	return nil
}
