package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	fmt.Println("Controls:")
	fmt.Println()

	var rows [][2]string
	maxKeyLen := 3 // "Key" header
	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			h := b.Help()
			rows = append(rows, [2]string{h.Key, h.Desc})
			if len(h.Key) > maxKeyLen {
				maxKeyLen = len(h.Key)
			}
		}
	}

	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "---", "------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxKeyLen, r[0], r[1])
	}
}
