//go:build statsview

package main

import (
	"log"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const statsAddress = "localhost:12600"

// launchStats serves runtime charts at statsAddress/debug/statsview and
// pprof at statsAddress/debug/pprof/.
func launchStats() {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(statsAddress))
		statsview.New().Start()
	}()
	log.Printf("Stats server available at http://%s/debug/statsview\n", statsAddress)
}
