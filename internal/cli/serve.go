package cli

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	boardnet "MyPaintBoard/internal/net"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		noMDNS bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board to browsers on the local network",
		Long:  `Serve hosts the board over HTTP. Each browser that opens it draws on its own private canvas.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.cfg.Server.Addr = addr
			}
			if noMDNS {
				c.cfg.Server.MDNS = false
			}
			return c.runServe(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8888", "listen address")
	cmd.Flags().BoolVar(&noMDNS, "no-mdns", false, "do not advertise the board over mDNS")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command) error {
	srv := boardnet.NewServer(boardnet.Options{
		Addr:       c.cfg.Server.Addr,
		NewSession: c.newSession,
		MDNS:       c.cfg.Server.MDNS,
		Name:       c.cfg.Server.Name,
		Logger:     c.Logger,
	})

	out := cmd.OutOrStdout()
	return srv.ListenAndServe(ctx, func(addr *net.TCPAddr) {
		host, err := boardnet.GetOutgoingIP()
		if err != nil {
			c.Logger.Warn("could not determine LAN address", "err", err)
			host = "localhost"
		}
		fmt.Fprintln(out, StyleTitle.Render(c.cfg.Server.Name))
		printSuccess(out, "Board ready")
		printDetail(out, "open", StyleLink.Render(fmt.Sprintf("http://%s:%d/", host, addr.Port)))
		printDetail(out, "canvas", StyleNumber.Render(fmt.Sprintf("%dx%d", c.cfg.Canvas.Width, c.cfg.Canvas.Height)))
	})
}
