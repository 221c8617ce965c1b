package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-blurhash"
)

var (
	encodeX      int
	encodeY      int
	encodeInfer  bool
	encodePrefix bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <fixture-name>",
	Short: "Encode a built-in fixture pixel map into a BlurHash string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		pm, err := pixelMapFromFixture(name)
		if err != nil {
			return err
		}

		if (encodeX > 0) != (encodeY > 0) {
			return fmt.Errorf("--x and --y must be given together")
		}

		var ratio blurhash.Ratio
		switch {
		case encodeInfer:
			ratio = blurhash.InferRatio()
		case encodeX > 0:
			ratio = blurhash.ExplicitRatio(encodeX, encodeY)
		default:
			ratio = blurhash.DefaultRatio()
		}

		hash, err := blurhash.Encode(pm, ratio, encodePrefix)
		if err != nil {
			return err
		}

		logger.Info("encoded fixture", slog.String("fixture", name), slog.String("hash", hash))
		fmt.Println(hash)
		return nil
	},
}

func init() {
	encodeCmd.Flags().IntVar(&encodeX, "x", 0, "explicit X component count (1-9)")
	encodeCmd.Flags().IntVar(&encodeY, "y", 0, "explicit Y component count (1-9)")
	encodeCmd.Flags().BoolVar(&encodeInfer, "infer", false, "infer component counts from aspect ratio")
	encodeCmd.Flags().BoolVar(&encodePrefix, "prefix", false, "prepend a <W:H> size prefix")
}
