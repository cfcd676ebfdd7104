package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootPrintCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the current MMR root",
	Args:  cobra.NoArgs,
	RunE:  runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer eng.Close() //nolint:errcheck

	root, err := eng.RootHex()
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	fmt.Println(root)
	return nil
}
