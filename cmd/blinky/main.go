//go:build tinygo && !bareboot

package main

import (
	"bluepill-blink/app/blink"
	"bluepill-blink/board/bluepill"
)

func main() {
	println("[main] blinking PC13, spin", blink.DefaultIterations)
	blink.New(bluepill.Hardware(), blink.DefaultConfig()).Run()
}
