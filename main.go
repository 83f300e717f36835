package main

import (
	"github.com/mj1618/xrandroll/cmd"

	// Register the xrandr display backend.
	_ "github.com/mj1618/xrandroll/internal/platform/xrandr"
)

func main() {
	cmd.Execute()
}
