package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
)

var codexCmd = &cobra.Command{
	Use:   "codex",
	Short: "List enemy archetypes and upgrades",
	Long:  `Shows every enemy archetype with its unlock wave and stats, and the upgrade pool.`,
	Args:  cobra.NoArgs,
	Run:   runCodex,
}

func runCodex(_ *cobra.Command, _ []string) {
	fmt.Println("Enemies:")
	fmt.Println()
	fmt.Printf("  %-11s  %-6s  %-4s  %-4s  %-5s  %s\n", "Kind", "Unlock", "Cost", "HP", "Speed", "Score")
	fmt.Printf("  %-11s  %-6s  %-4s  %-4s  %-5s  %s\n", "----", "------", "----", "--", "-----", "-----")
	for _, e := range catalog.Enemies() {
		fmt.Printf("  %-11s  %-6d  %-4d  %-4.0f  %-5.0f  %d\n", e.Kind, e.UnlockWave, e.Cost, e.HP, e.Speed, e.Score)
	}
	drone := catalog.Enemy(catalog.SplitDrone)
	fmt.Printf("  %-11s  %-6s  %-4s  %-4.0f  %-5.0f  %d\n", drone.Kind, "split", "-", drone.HP, drone.Speed, drone.Score)

	fmt.Println()
	fmt.Println("Upgrades:")
	fmt.Println()
	for _, u := range catalog.Upgrades() {
		fmt.Printf("  %s  %-18s %s\n", u.Icon, u.Name, u.Description)
	}
}
