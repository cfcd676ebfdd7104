package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <leaf-data>",
	Short: "Hash and append a leaf",
	Args:  cobra.ExactArgs(1),
	RunE:  runPush,
}

func runPush(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer eng.Close() //nolint:errcheck

	pos, size, err := eng.Push([]byte(args[0]))
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	log.Infow("pushed leaf", "position", pos, "mmrSize", size)
	fmt.Printf("position=%d mmrSize=%d\n", pos, size)
	return nil
}
