package infra

import (
	"fmt"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
)

// PrintBanner displays the startup banner.
func PrintBanner(cfg *Config) {
	name := cfg.App.Name
	if name == "" {
		name = AppName
	}

	fmt.Println()
	fmt.Printf("%s#########################################################%s\n", colorCyan, colorReset)
	fmt.Printf("%s#  ⛏  %-49s #%s\n", colorCyan, name, colorReset)
	fmt.Printf("%s#  VERSION: %-44s #%s\n", colorCyan, cfg.App.Version, colorReset)
	fmt.Printf("%s#  LISTEN:  %-44s #%s\n", colorCyan, cfg.Server.Addr, colorReset)
	fmt.Printf("%s#########################################################%s\n", colorCyan, colorReset)
	fmt.Println()
}
