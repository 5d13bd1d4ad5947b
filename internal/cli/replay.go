package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"MyPaintBoard/internal/errors"
	"MyPaintBoard/internal/export"
	"MyPaintBoard/internal/state"
)

// Script is a recorded session: the actions a front end delivered, in order.
//
//	{"actions": [{"op": "down", "x": 2, "y": 2}, {"op": "move", "x": 7, "y": 2}, {"op": "up"}]}
type Script struct {
	Actions []state.Action `json:"actions"`
}

// ReadScript decodes a script, rejecting unknown fields.
func ReadScript(r io.Reader) (*Script, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode script")
	}
	return &s, nil
}

func (c *CLI) replayCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "replay <script.json|->",
		Short: "Replay an action script headless and export the result",
		Long:  `Replay applies a recorded action script to a fresh board and writes the final surface as PNG or PDF, chosen by the --out extension.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd, args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "board.png", "output file (.png or .pdf)")

	return cmd
}

func (c *CLI) runReplay(cmd *cobra.Command, path, out string) error {
	format, err := export.FormatFromPath(out)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	script, err := ReadScript(in)
	if err != nil {
		return err
	}

	session, err := c.newSession()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	n, err := session.ApplyAll(script.Actions)
	if err != nil {
		return err
	}
	prog.done("replayed", "actions", n)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(f, format, session.Frame()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	info := session.Info()
	w := cmd.OutOrStdout()
	printSuccess(w, "Replayed %s actions", StyleNumber.Render(fmt.Sprint(n)))
	printDetail(w, "history", fmt.Sprintf("undo %d, redo %d", info.Undo, info.Redo))
	printDetail(w, "wrote", out)
	return nil
}
