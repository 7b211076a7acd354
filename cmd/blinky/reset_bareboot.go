//go:build tinygo && bareboot

package main

import (
	"bluepill-blink/app/blink"
	"bluepill-blink/board/bluepill"
	"bluepill-blink/boot"
	"bluepill-blink/x/spin"
)

// blinkReset is word 1 of the entry table in targets/stm32f103-bare.ld.
// The stack pointer is already loaded from word 0; nothing else is set up.
//
//export blink_reset
func blinkReset() {
	boot.Start(boot.Linked(), boot.Direct{}, bareMain)
}

// main is never reached through the entry table; the runtime still links
// against main.main.
func main() { bareMain() }

func bareMain() {
	blink.Run(bluepill.Hardware(), blink.Config{Iterations: blink.DefaultIterations, Spin: spin.Loop})
}
