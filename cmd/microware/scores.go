package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vibeware/microware/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show past sessions and round win rates",
	Long: `Display the best rush sessions and the per-round win rates.

Examples:
  microware scores
  microware scores --limit 25
  microware scores --reset
  microware scores --db ./sessions.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all recorded sessions")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded sessions deleted.")
		return
	}

	sessions, err := store.TopSessions(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'microware rush' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "Won/Played", "Speed", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "----------", "-----", "----")
	for i, s := range sessions {
		ratio := fmt.Sprintf("%d/%d", s.RoundsWon, s.RoundsPlayed)
		fmt.Printf("  %-4d  %-8d  %-12s  x%-5.1f  %s\n",
			i+1, s.Score, ratio, s.MaxSpeed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllRoundStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Round win rates")
	fmt.Println()

	ids := lo.Keys(stats)
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-7s  %-5s  %s\n", "Round", "Played", "Won", "Rate")
	fmt.Printf("  %-14s  %-7s  %-5s  %s\n", "-----", "------", "---", "----")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-14s  %-7d  %-5d  %.0f%%\n", id, st.Plays, st.Wins, st.WinRate()*100)
	}
}
