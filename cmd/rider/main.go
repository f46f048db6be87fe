// Command rider runs one trip-start screen activation from the command line.
// Device state is given as flags; geocoding uses the same environment
// configuration as locationd.
//
// Usage:
//
//	MAPBOX_TOKEN=... go run ./cmd/rider \
//	  --permission granted --lat 37.5665 --lon 126.9780 \
//	  --destination 강남역
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
