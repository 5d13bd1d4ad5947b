package cli

import (
	"github.com/spf13/cobra"

	"MyPaintBoard/internal/ui"
)

func (c *CLI) desktopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "desktop",
		Short: "Open the board in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.newSession()
			if err != nil {
				return err
			}
			ui.RunApp(session, c.Logger)
			return nil
		},
	}
}
