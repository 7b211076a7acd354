package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bluepill-blink/boot/vector"
	"bluepill-blink/config"
	"bluepill-blink/errcode"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect IMAGE",
		Short: "Decode and validate the entry table of a raw flash image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errcode.Wrap(errcode.Error, "inspect", err)
			}
			defer f.Close()

			var head [vector.Size]byte
			n, err := io.ReadFull(f, head[:])
			if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
				return errcode.Wrap(errcode.Error, "inspect", err)
			}
			tab, err := vector.Decode(head[:n])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stack_top %s\nreset     %s\n", hex32(tab.StackTop), hex32(tab.Reset))

			mm, err := config.Load(board)
			if err != nil {
				return err
			}
			if err := tab.Validate(mm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok (%s)\n", mm.Board)
			return nil
		},
	}
}
