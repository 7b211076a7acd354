package main

import (
	"debug/elf"
	"fmt"

	"github.com/spf13/cobra"

	"bluepill-blink/boot"
	"bluepill-blink/boot/vector"
	"bluepill-blink/config"
	"bluepill-blink/errcode"
)

// Linker symbols read from the image, in Layout field order.
var layoutSyms = []string{"_estack", "_etext", "_sdata", "_edata", "_sbss", "_ebss"}

const resetSym = "blink_reset"

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout ELF",
		Short: "Print and validate the boot layout of a linked firmware",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := elf.Open(args[0])
			if err != nil {
				return errcode.Wrap(errcode.Error, "layout", err)
			}
			defer f.Close()

			syms, err := f.Symbols()
			if err != nil {
				return errcode.Wrap(errcode.MissingSym, "layout", err)
			}
			l, reset, err := layoutFromSymbols(syms)
			if err != nil {
				return err
			}
			printLayout(cmd, l)

			mm, err := config.Load(board)
			if err != nil {
				return err
			}
			if err := l.Validate(mm); err != nil {
				return err
			}
			tab := vector.FromLayout(l, reset)
			fmt.Fprintf(cmd.OutOrStdout(), "vector    sp=%s reset=%s\n", hex32(tab.StackTop), hex32(tab.Reset))
			if err := tab.Validate(mm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok (%s)\n", mm.Board)
			return nil
		},
	}
}

// layoutFromSymbols picks the boundary symbols and the reset routine out of
// an ELF symbol table.
func layoutFromSymbols(syms []elf.Symbol) (boot.Layout, uint32, error) {
	vals := make(map[string]uint64, len(layoutSyms)+1)
	for _, s := range syms {
		vals[s.Name] = s.Value
	}
	var addr [6]uintptr
	for i, name := range layoutSyms {
		v, ok := vals[name]
		if !ok {
			return boot.Layout{}, 0, errcode.New(errcode.MissingSym, "layout", name)
		}
		addr[i] = uintptr(v)
	}
	reset, ok := vals[resetSym]
	if !ok {
		return boot.Layout{}, 0, errcode.New(errcode.MissingSym, "layout", resetSym)
	}
	return boot.Layout{
		StackTop:  addr[0],
		CodeEnd:   addr[1],
		DataStart: addr[2],
		DataEnd:   addr[3],
		BSSStart:  addr[4],
		BSSEnd:    addr[5],
	}, uint32(reset), nil
}

func printLayout(cmd *cobra.Command, l boot.Layout) {
	fmt.Fprintf(cmd.OutOrStdout(), "_estack   %s\n", hex32(uint32(l.StackTop)))
	fmt.Fprintf(cmd.OutOrStdout(), "_etext    %s\n", hex32(uint32(l.CodeEnd)))
	fmt.Fprintf(cmd.OutOrStdout(), ".data     %s..%s (%d words)\n", hex32(uint32(l.DataStart)), hex32(uint32(l.DataEnd)), l.DataWords())
	fmt.Fprintf(cmd.OutOrStdout(), ".bss      %s..%s (%d words)\n", hex32(uint32(l.BSSStart)), hex32(uint32(l.BSSEnd)), l.BSSWords())
}
