package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bluepill-blink/boot/vector"
	"bluepill-blink/config"
	"bluepill-blink/errcode"
)

var encodeOpts = struct {
	stack  string
	reset  string
	output string
	force  bool
}{}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Write an 8-byte entry table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if encodeOpts.stack == "" || encodeOpts.reset == "" {
				return errcode.New(errcode.InvalidParams, "encode", "--stack and --reset are required")
			}
			sp, err := parseAddr(encodeOpts.stack)
			if err != nil {
				return err
			}
			rst, err := parseAddr(encodeOpts.reset)
			if err != nil {
				return err
			}
			tab := vector.Table{StackTop: sp, Reset: rst}
			if !encodeOpts.force {
				mm, err := config.Load(board)
				if err != nil {
					return err
				}
				if err := tab.Validate(mm); err != nil {
					return err
				}
			}
			b := tab.Encode()
			if err := os.WriteFile(encodeOpts.output, b[:], 0o644); err != nil {
				return errcode.Wrap(errcode.Error, "encode", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: sp=%s reset=%s\n", encodeOpts.output, hex32(sp), hex32(rst))
			return nil
		},
	}
	cmd.Flags().StringVar(&encodeOpts.stack, "stack", "", "initial stack pointer (word 0)")
	cmd.Flags().StringVar(&encodeOpts.reset, "reset", "", "reset routine address with thumb bit (word 1)")
	cmd.Flags().StringVarP(&encodeOpts.output, "output", "o", "vectors.bin", "output file")
	cmd.Flags().BoolVar(&encodeOpts.force, "force", false, "skip validation against the board memory map")
	return cmd
}
