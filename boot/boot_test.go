package boot

import (
	"math/rand"
	"testing"
)

const (
	flashBase = 0x08000000
	sramBase  = 0x20000000
	guard     = 0xA5A5A5A5
)

// image maps a template in flash and a RAM block holding a guard word,
// the data range, a guard word, the bss range and a final guard word.
type image struct {
	mem   *SimMemory
	flash []uint32
	ram   []uint32
	l     Layout
}

func newImage(tmpl []uint32, bss []uint32) *image {
	flash := append([]uint32{0xE7FEE7FE}, tmpl...) // one word of "code" before _etext
	ram := make([]uint32, 0, len(tmpl)+len(bss)+3)
	ram = append(ram, guard)
	for range tmpl {
		ram = append(ram, 0xCCCCCCCC)
	}
	ram = append(ram, guard)
	ram = append(ram, bss...)
	ram = append(ram, guard)

	dataStart := uintptr(sramBase + WordSize)
	dataEnd := dataStart + uintptr(len(tmpl))*WordSize
	bssStart := dataEnd + WordSize
	bssEnd := bssStart + uintptr(len(bss))*WordSize

	m := NewSimMemory()
	m.Map(flashBase, flash)
	m.Map(sramBase, ram)
	return &image{
		mem:   m,
		flash: flash,
		ram:   ram,
		l: Layout{
			StackTop:  sramBase + 0x5000,
			CodeEnd:   flashBase + WordSize,
			DataStart: dataStart,
			DataEnd:   dataEnd,
			BSSStart:  bssStart,
			BSSEnd:    bssEnd,
		},
	}
}

func (im *image) data() []uint32 {
	off := (im.l.DataStart - sramBase) / WordSize
	return im.ram[off : off+im.l.DataWords()]
}

func (im *image) bss() []uint32 {
	off := (im.l.BSSStart - sramBase) / WordSize
	return im.ram[off : off+im.l.BSSWords()]
}

func (im *image) checkGuards(t *testing.T) {
	t.Helper()
	for _, i := range []int{0, 1 + len(im.data()), len(im.ram) - 1} {
		if im.ram[i] != guard {
			t.Fatalf("guard word %d overwritten: %#08x", i, im.ram[i])
		}
	}
}

func randWords(r *rand.Rand, n int) []uint32 {
	w := make([]uint32, n)
	for i := range w {
		w[i] = r.Uint32()
	}
	return w
}

func TestCopyDataMatchesTemplate(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 7, 64, 513} {
		tmpl := randWords(r, n)
		im := newImage(tmpl, nil)
		CopyData(im.l, im.mem)
		got := im.data()
		if len(got) != n {
			t.Fatalf("n=%d: data words = %d", n, len(got))
		}
		for i := range tmpl {
			if got[i] != tmpl[i] {
				t.Fatalf("n=%d: word %d = %#08x, want %#08x", n, i, got[i], tmpl[i])
			}
		}
		im.checkGuards(t)
		if im.mem.Stores() != n {
			t.Fatalf("n=%d: stores = %d", n, im.mem.Stores())
		}
	}
}

func TestZeroBSSClearsWholeRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 3, 100} {
		bss := randWords(r, n)
		im := newImage(nil, bss)
		ZeroBSS(im.l, im.mem)
		for i, w := range im.bss() {
			if w != 0 {
				t.Fatalf("n=%d: bss word %d = %#08x, want 0", n, i, w)
			}
		}
		im.checkGuards(t)
		if im.mem.Stores() != n {
			t.Fatalf("n=%d: stores = %d", n, im.mem.Stores())
		}
	}
}

func TestCopyOrderIndependentForDisjointRanges(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tmpl := randWords(r, 37)

	fwd := newImage(tmpl, nil)
	CopyData(fwd.l, fwd.mem)

	rev := newImage(tmpl, nil)
	for i := int(rev.l.DataWords()) - 1; i >= 0; i-- {
		off := uintptr(i) * WordSize
		rev.mem.Store(rev.l.DataStart+off, rev.mem.Load(rev.l.CodeEnd+off))
	}

	a, b := fwd.data(), rev.data()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("word %d: ascending %#08x, descending %#08x", i, a[i], b[i])
		}
	}
}

func TestMaterializeScenario(t *testing.T) {
	im := newImage([]uint32{0x11, 0x22, 0x33, 0x44}, []uint32{0xDEAD, 0xBEEF})
	Materialize(im.l, im.mem)
	want := []uint32{0x11, 0x22, 0x33, 0x44}
	for i, w := range im.data() {
		if w != want[i] {
			t.Fatalf("data[%d] = %#x, want %#x", i, w, want[i])
		}
	}
	for i, w := range im.bss() {
		if w != 0 {
			t.Fatalf("bss[%d] = %#x, want 0", i, w)
		}
	}
	im.checkGuards(t)
	// The template itself is read only.
	if im.flash[1] != 0x11 || im.flash[4] != 0x44 {
		t.Fatalf("template modified: %#v", im.flash)
	}
}

func TestStartHandsOffAfterInit(t *testing.T) {
	im := newImage([]uint32{7}, []uint32{9})
	type handoff struct{}
	defer func() {
		if v := recover(); v != (handoff{}) {
			t.Fatalf("recover() = %v, want handoff", v)
		}
	}()
	Start(im.l, im.mem, func() {
		if im.data()[0] != 7 || im.bss()[0] != 0 {
			t.Fatalf("entry ran before memory was ready")
		}
		// Leave through a panic; Start never returns on its own.
		panic(handoff{})
	})
	t.Fatalf("Start returned")
}

func TestSimMemoryRejectsUnmapped(t *testing.T) {
	m := NewSimMemory()
	m.Map(sramBase, make([]uint32, 2))
	defer func() {
		if recover() == nil {
			t.Fatalf("store past region did not panic")
		}
	}()
	m.Store(sramBase+2*WordSize, 1)
}

func TestCopyWordsAndZeroWords(t *testing.T) {
	src := []uint32{0x11, 0x22, 0x33, 0x44}
	dst := make([]uint32, 4)
	if n := CopyWords(dst, src); n != 4 {
		t.Fatalf("CopyWords n = %d, want 4", n)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], src[i])
		}
	}
	if n := CopyWords(nil, src); n != 0 {
		t.Fatalf("CopyWords(nil) n = %d", n)
	}
	ZeroWords(dst)
	for i, w := range dst {
		if w != 0 {
			t.Fatalf("dst[%d] = %#x after ZeroWords", i, w)
		}
	}
	ZeroWords(nil)
}

func TestPartialTrailingWordNotWritten(t *testing.T) {
	flash := []uint32{0x11111111, 0x22222222}
	ram := []uint32{0xCCCCCCCC, guard, 0xCCCCCCCC, guard}
	m := NewSimMemory()
	m.Map(flashBase, flash)
	m.Map(sramBase, ram)

	l := Layout{
		CodeEnd:   flashBase,
		DataStart: sramBase,
		DataEnd:   sramBase + 6,
		BSSStart:  sramBase + 2*WordSize,
		BSSEnd:    sramBase + 2*WordSize + 6,
	}
	if l.DataWords() != 1 || l.BSSWords() != 1 {
		t.Fatalf("words: data=%d bss=%d, want 1/1", l.DataWords(), l.BSSWords())
	}
	Materialize(l, m)

	want := []uint32{0x11111111, guard, 0, guard}
	for i := range want {
		if ram[i] != want[i] {
			t.Fatalf("ram[%d] = %#08x, want %#08x", i, ram[i], want[i])
		}
	}
	if m.Stores() != 2 {
		t.Fatalf("stores = %d, want 2", m.Stores())
	}
}

func TestZeroBSSAtTopOfAddressSpace(t *testing.T) {
	ram := []uint32{0xCCCCCCCC, guard}
	m := NewSimMemory()
	m.Map(0xFFFFFFF8, ram)

	ZeroBSS(Layout{BSSStart: 0xFFFFFFF8, BSSEnd: 0xFFFFFFFF}, m)
	if ram[0] != 0 || ram[1] != guard {
		t.Fatalf("ram = %#08x %#08x, want 0 and guard", ram[0], ram[1])
	}
	if m.Stores() != 1 {
		t.Fatalf("stores = %d, want 1", m.Stores())
	}
}

func TestReversedRangesWriteNothing(t *testing.T) {
	m := NewSimMemory()
	l := Layout{
		CodeEnd:   flashBase,
		DataStart: sramBase + 8,
		DataEnd:   sramBase,
		BSSStart:  sramBase + 8,
		BSSEnd:    sramBase,
	}
	if l.DataWords() != 0 || l.BSSWords() != 0 {
		t.Fatalf("words: data=%d bss=%d, want 0/0", l.DataWords(), l.BSSWords())
	}
	// Nothing is mapped, so any access would panic.
	Materialize(l, m)
	if m.Stores() != 0 {
		t.Fatalf("stores = %d, want 0", m.Stores())
	}
}
