// Package main is the entry point for the relayctl CLI client.
package main

import (
	"github.com/auctionsniper/ebay-relay/cmd/relayctl/cmd"
)

func main() {
	cmd.Execute()
}
