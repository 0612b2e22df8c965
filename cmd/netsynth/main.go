// netsynth CLI - synthesizes batches of network-configuration records
// (VLANs, firewall rules, NAT mappings, VPN tunnels) for test and demo use.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
