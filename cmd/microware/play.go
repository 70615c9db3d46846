package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibeware/microware/internal/audio"
	"github.com/vibeware/microware/internal/config"
	"github.com/vibeware/microware/internal/platform/tui"
	"github.com/vibeware/microware/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <round>",
	Short: "Practice a single round",
	Long: `Play one round on repeat. Lives and score don't count and nothing
is saved, so it's the place to learn a round's timing.

Examples:
  microware play quickdraw
  microware play stopbar --fps 30
  microware play catch --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	roundID := args[0]

	if !registry.Exists(roundID) {
		fmt.Fprintf(os.Stderr, "Error: unknown round %q\n", roundID)
		fmt.Fprintln(os.Stderr, "Run 'microware list' to see available rounds.")
		os.Exit(1)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rtc := terminalConfig()
	if rtc.Seed == 0 {
		rtc.Seed = time.Now().UnixNano()
	}

	if _, err := tui.RunPractice(roundID, cfg.Rules(), rtc, audio.NewBell(os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
