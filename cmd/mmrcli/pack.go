package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
)

var (
	packIn     string
	packOut    string
	packDecode bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "zstd-compress (or decompress) a packed proof or leaves file for transport",
	Long: "pack applies an outer zstd envelope around an already-packed proof or " +
		"leaves file; the wire format produced by prove is untouched, compression " +
		"is purely a transport optimisation layered on top by this CLI.",
	Args: cobra.NoArgs,
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVar(&packIn, "in", "", "input file")
	packCmd.Flags().StringVar(&packOut, "out", "", "output file")
	packCmd.Flags().BoolVar(&packDecode, "decode", false, "decompress instead of compress")
	_ = packCmd.MarkFlagRequired("in")
	_ = packCmd.MarkFlagRequired("out")
}

func runPack(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(packIn)
	if err != nil {
		return fmt.Errorf("pack: read input: %w", err)
	}

	var out []byte
	if packDecode {
		out, err = zstdDecompress(raw)
	} else {
		out, err = zstdCompress(raw)
	}
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}

	if err := os.WriteFile(packOut, out, 0o600); err != nil {
		return fmt.Errorf("pack: write output: %w", err)
	}
	log.Infow("packed file", "in", packIn, "out", packOut, "decode", packDecode, "inBytes", len(raw), "outBytes", len(out))
	fmt.Printf("%s -> %s (%d -> %d bytes)\n", packIn, packOut, len(raw), len(out))
	return nil
}

func zstdCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		return nil, fmt.Errorf("zstd write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("zstd close: %w", err)
	}
	return buf.Bytes(), nil
}

func zstdDecompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
