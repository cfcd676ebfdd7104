// Command mmrcli is a small demonstration CLI over a bbolt-backed MMR:
// append leaves, print the root, and generate/verify both classic and
// compiled proofs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "mmrcli",
	Short: "Merkle Mountain Range command line tool",
	Long:  "mmrcli appends leaves to, and proves/verifies inclusion in, a bbolt-backed Merkle Mountain Range.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", "mmr.db", "path to the bbolt database file")
	rootCmd.PersistentFlags().StringVar(&cfg.Algo, "algo", "blake3", "digest algorithm: blake3 or blake2b")

	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(rootPrintCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(packCmd)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mmrcli: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	log = logger.Sugar()

	if err := rootCmd.Execute(); err != nil {
		log.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
