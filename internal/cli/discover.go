package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	boardnet "MyPaintBoard/internal/net"
)

func (c *CLI) discoverCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List boards served on the local network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c.Logger.Debug("browsing", "service", boardnet.ServiceType, "timeout", timeout)

			found := 0
			err := boardnet.Browse(timeout, func(b boardnet.Board) {
				found++
				printDetail(out, b.Name, StyleLink.Render(b.URL()))
			})
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			if found == 0 {
				printWarning(out, "No boards found within %s", timeout)
				return nil
			}
			printSuccess(out, "Found %s board(s)", StyleNumber.Render(fmt.Sprint(found)))
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 3*time.Second, "how long to listen for answers")

	return cmd
}
