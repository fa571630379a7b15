// Package main is the entry point for the ebay-relay server.
package main

import (
	"os"

	"github.com/auctionsniper/ebay-relay/cmd/ebay-relay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
