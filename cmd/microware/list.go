package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibeware/microware/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available rounds",
	Long:  `Shows every microgame round in the catalog.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	rounds := registry.List()

	if len(rounds) == 0 {
		fmt.Println("No rounds available.")
		return
	}

	fmt.Println("Available rounds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, r := range rounds {
		if len(r.ID) > maxIDLen {
			maxIDLen = len(r.ID)
		}
		if len(r.Title) > maxTitleLen {
			maxTitleLen = len(r.Title)
		}
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Controls")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "--------")

	for _, r := range rounds {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, r.Controls)
	}

	fmt.Println()
	fmt.Println("Run 'microware play <id>' to practice a round.")
}
