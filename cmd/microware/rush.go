package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vibeware/microware/internal/audio"
	"github.com/vibeware/microware/internal/config"
	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/platform/tui"
	"github.com/vibeware/microware/internal/registry"
	"github.com/vibeware/microware/internal/session"
	"github.com/vibeware/microware/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var rushCmd = &cobra.Command{
	Use:   "rush",
	Short: "Play a full rush session",
	Long: `Start a rush: the platform picks a random round, you get a one-word
prompt, then a few seconds to pull it off. Wins build score and speed;
four fails end the session.

Controls:
  A/D, arrows  - Move
  Space/Enter  - Primary action
  Letter keys  - Typing rounds
  Esc          - Abort the current round
  Q/Ctrl+C     - Quit

Difficulty presets:
  easy    - 5 lives, speeds up every 7 wins
  normal  - 4 lives, speeds up every 5 wins
  hard    - 3 lives, speeds up every 3 wins

Examples:
  microware rush
  microware rush --difficulty hard
  microware rush --config ./my-rules.yaml
  microware rush --seed 42`,
	Run: runRush,
}

func init() {
	rushCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rushCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rushCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
}

func runRush(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.Preset(flagDifficulty))
	}
	rules := cfg.Rules()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		store = nil
	}

	rtc := terminalConfig()

	var cue audio.Cue = audio.NewBell(os.Stdout)
	if flagMute {
		cue = audio.Null{}
	}

	// Session loop: game over returns to the menu, menu starts sessions.
	inMenu := false
	for {
		if inMenu {
			menuResult, menuErr := tui.RunMenu(rtc)
			if menuErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
				break
			}
			rtc = menuResult.Config

			if menuResult.Quit {
				break
			}
			if menuResult.WantsHistory {
				goBack, hErr := tui.RunHistory(store, rtc.ScreenW, rtc.ScreenH)
				if hErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
				}
				if !goBack {
					break
				}
				continue
			}
			if menuResult.Practice {
				rtc.Seed = time.Now().UnixNano()
				if _, pErr := tui.RunPractice(menuResult.RoundID, rules, rtc, cue); pErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", pErr)
					break
				}
				continue
			}
		}

		rtc.Seed = flagSeed
		if inMenu || flagSeed == 0 {
			rtc.Seed = time.Now().UnixNano()
		}

		wantsMenu, runErr := tui.RunSession(registry.IDs(), store, rules, rtc, cue, localPlayer())
		if errors.Is(runErr, session.ErrNoRounds) {
			inMenu = true
			continue
		}
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			break
		}
		if !wantsMenu {
			break
		}
		inMenu = true
	}

	if store != nil {
		store.Close()
	}
}

// terminalConfig builds a runtime config sized to the real terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
