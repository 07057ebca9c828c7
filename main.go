// Package main is the entry point for the mcstats CLI tool, which compiles
// per-player Minecraft and Cobblemon stat files into ranked leaderboards.
package main

import "github.com/ferrand/go-mc-stats/cmd"

func main() {
	cmd.Execute()
}
