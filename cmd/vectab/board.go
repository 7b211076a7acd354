package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bluepill-blink/config"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Print the selected board memory map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mm, err := config.Load(board)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "board            %s\n", mm.Board)
			fmt.Fprintf(cmd.OutOrStdout(), "flash            %s +%#x\n", hex32(mm.Flash.Start), mm.Flash.Size)
			fmt.Fprintf(cmd.OutOrStdout(), "sram             %s +%#x\n", hex32(mm.SRAM.Start), mm.SRAM.Size)
			fmt.Fprintf(cmd.OutOrStdout(), "blink_iterations %d\n", mm.BlinkIterations)
			return nil
		},
	}
}
