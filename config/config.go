package config

import (
	"bytes"
	"embed"

	"gopkg.in/yaml.v3"

	"bluepill-blink/errcode"
)

// -----------------------------------------------------------------------------
// Board memory maps
// -----------------------------------------------------------------------------

const DefaultBoard = "bluepill"

//go:embed boards/*.yaml
var boardFS embed.FS

// EmbeddedLookup allows overriding how memory maps are resolved.
var EmbeddedLookup = func(board string) ([]byte, bool) {
	b, err := boardFS.ReadFile("boards/" + board + ".yaml")
	if err != nil {
		return nil, false
	}
	return b, true
}

// Region is a contiguous address range [Start, Start+Size).
type Region struct {
	Start uint32 `yaml:"start"`
	Size  uint32 `yaml:"size"`
}

// End returns one past the last address of the region.
func (r Region) End() uint64 { return uint64(r.Start) + uint64(r.Size) }

// Contains reports whether [addr, addr+n) lies inside the region.
func (r Region) Contains(addr uint32, n uint32) bool {
	return addr >= r.Start && uint64(addr)+uint64(n) <= r.End()
}

// MemoryMap describes where flash and SRAM live on a board and the
// firmware's tunables for it.
type MemoryMap struct {
	Board           string `yaml:"board"`
	Flash           Region `yaml:"flash"`
	SRAM            Region `yaml:"sram"`
	BlinkIterations uint32 `yaml:"blink_iterations"`
}

// Load resolves and parses the memory map for board.
func Load(board string) (MemoryMap, error) {
	raw, ok := EmbeddedLookup(board)
	if !ok || len(raw) == 0 {
		return MemoryMap{}, errcode.New(errcode.UnknownBoard, "config", "no memory map for board: "+board)
	}
	return Parse(raw)
}

// Parse decodes a YAML memory map and checks it is usable.
func Parse(raw []byte) (MemoryMap, error) {
	var mm MemoryMap
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&mm); err != nil {
		return MemoryMap{}, errcode.Wrap(errcode.BadMemoryMap, "config", err)
	}
	if mm.Flash.Size == 0 || mm.SRAM.Size == 0 {
		return MemoryMap{}, errcode.New(errcode.BadMemoryMap, "config", "flash and sram sizes must be non-zero")
	}
	if mm.Flash.End() > 1<<32 || mm.SRAM.End() > 1<<32 {
		return MemoryMap{}, errcode.New(errcode.BadMemoryMap, "config", "region exceeds 32-bit address space")
	}
	if mm.Flash.Start < uint32(mm.SRAM.End()) && mm.SRAM.Start < uint32(mm.Flash.End()) {
		return MemoryMap{}, errcode.New(errcode.BadMemoryMap, "config", "flash and sram overlap")
	}
	return mm, nil
}
