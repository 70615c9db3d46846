// microware is a terminal microgame rush: short rounds played back to
// back, faster and faster, until the lives run out.
//
// Usage:
//
//	microware rush           - Play a full rush session
//	microware play <round>   - Practice a single round
//	microware list           - List available rounds
//	microware scores         - Show past sessions and round win rates
//	microware serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.microware/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import rounds to register them
	_ "github.com/vibeware/microware/internal/rounds/balance"
	_ "github.com/vibeware/microware/internal/rounds/catch"
	_ "github.com/vibeware/microware/internal/rounds/climb"
	_ "github.com/vibeware/microware/internal/rounds/dodge"
	_ "github.com/vibeware/microware/internal/rounds/freeze"
	_ "github.com/vibeware/microware/internal/rounds/hurdle"
	_ "github.com/vibeware/microware/internal/rounds/mash"
	_ "github.com/vibeware/microware/internal/rounds/pop"
	_ "github.com/vibeware/microware/internal/rounds/quickdraw"
	_ "github.com/vibeware/microware/internal/rounds/sequence"
	_ "github.com/vibeware/microware/internal/rounds/stopbar"
	_ "github.com/vibeware/microware/internal/rounds/typist"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "microware",
	Short: "Microware - a rush of tiny games in your terminal",
	Long: `Microware throws five-second microgames at you back to back.
Win a round to score, fail and lose a life. Every few wins the whole
thing speeds up. Four misses and it's over.

Available commands:
  rush     - Play a full session
  play     - Practice a single round
  list     - Show all available rounds
  scores   - View past sessions and round win rates
  serve    - Start SSH server for remote play

Examples:
  microware rush
  microware rush --difficulty hard
  microware play quickdraw
  microware serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.microware/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(rushCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
