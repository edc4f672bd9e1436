//go:build !statsview

package main

import "log"

func launchStats() {
	log.Println("Stats server not available: build with -tags statsview")
}
