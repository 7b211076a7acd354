// Command vectab builds and checks the two-word entry table at the start of
// a flash image, and reads the boot layout symbols out of a linked ELF.
package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"bluepill-blink/config"
	"bluepill-blink/errcode"
	"bluepill-blink/x/conv"
)

var board string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vectab",
		Short:         "Inspect entry tables and boot layouts",
		Long:          "vectab encodes, decodes and validates the Cortex-M entry table and the .data/.bss boundaries of a linked image.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&board, "board", "b", config.DefaultBoard, "board memory map to validate against")
	root.AddCommand(newEncodeCmd(), newInspectCmd(), newLayoutCmd(), newBoardCmd())
	return root
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("vectab:", err)
		os.Exit(1)
	}
}

// parseAddr accepts decimal, 0x hex, 0o octal and 0b binary.
func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errcode.Wrap(errcode.InvalidParams, "parse "+strconv.Quote(s), err)
	}
	return uint32(v), nil
}

func hex32(v uint32) string { return conv.Addr(v) }
