package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verifyProofIn  string
	verifyLeavesIn string
	verifyMMRSize  uint64
	verifyRoot     string
	verifyCompiled bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a packed proof against a root",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyProofIn, "proof-in", "proof.bin", "path to the packed proof")
	verifyCmd.Flags().StringVar(&verifyLeavesIn, "leaves-in", "leaves.bin", "path to the packed leaves")
	verifyCmd.Flags().Uint64Var(&verifyMMRSize, "mmr-size", 0, "mmr size the proof was generated against")
	verifyCmd.Flags().StringVar(&verifyRoot, "root", "", "expected root, hex encoded")
	verifyCmd.Flags().BoolVar(&verifyCompiled, "compiled", false, "the proof is a compiled (stack-machine) proof")
	_ = verifyCmd.MarkFlagRequired("mmr-size")
	_ = verifyCmd.MarkFlagRequired("root")
}

func runVerify(cmd *cobra.Command, args []string) error {
	packedProof, err := os.ReadFile(verifyProofIn)
	if err != nil {
		return fmt.Errorf("verify: read proof: %w", err)
	}
	packedLeaves, err := os.ReadFile(verifyLeavesIn)
	if err != nil {
		return fmt.Errorf("verify: read leaves: %w", err)
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer eng.Close() //nolint:errcheck

	var ok bool
	if verifyCompiled {
		ok, err = eng.VerifyCompiled(packedProof, packedLeaves, verifyMMRSize, verifyRoot)
	} else {
		ok, err = eng.VerifyClassic(packedProof, packedLeaves, verifyMMRSize, verifyRoot)
	}
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	log.Infow("verified proof", "ok", ok, "compiled", verifyCompiled)
	if !ok {
		fmt.Println("INVALID")
		os.Exit(1)
	}
	fmt.Println("OK")
	return nil
}
