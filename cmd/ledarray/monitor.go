package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
)

// This file implements a monitor for the terminal driver.  The terminal is in
// raw mode while frames are drawn so interrupts arrive as key events rather
// than signals, they are relayed to the stop channel here.

func watchKeys(screen tcell.Screen, stopC chan<- os.Signal) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				select {
				case stopC <- os.Interrupt:
				default:
				}
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
