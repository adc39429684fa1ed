package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stanleychen/sgtpuzzles/internal/board"
)

func init() {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in board presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range board.Presets {
				fmt.Printf("%-12s %s\n", p.Encode(true), p.Name())
			}
		},
	}

	rootCmd.AddCommand(presetsCmd)
}
