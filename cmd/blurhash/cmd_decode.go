package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-blurhash"
)

var (
	decodeWidth  int
	decodeHeight int
	decodePunch  float64
	decodeOut    string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hash>",
	Short: "Decode a BlurHash string into a PPM pixel map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := args[0]
		pm, err := blurhash.Decode(hash, decodeWidth, decodeHeight, decodePunch)
		if err != nil {
			return err
		}

		logger.Info("decoded hash", slog.String("hash", hash),
			slog.Int("width", pm.Width), slog.Int("height", pm.Height))

		w := os.Stdout
		if decodeOut != "-" && decodeOut != "" {
			f, err := os.Create(decodeOut)
			if err != nil {
				return err
			}
			defer f.Close()
			return writePPM(f, pm)
		}
		return writePPM(w, pm)
	},
}

func init() {
	decodeCmd.Flags().IntVar(&decodeWidth, "width", 0, "output width (0 = infer from size prefix)")
	decodeCmd.Flags().IntVar(&decodeHeight, "height", 0, "output height (0 = infer from size prefix)")
	decodeCmd.Flags().Float64Var(&decodePunch, "punch", 1.0, "AC contrast multiplier")
	decodeCmd.Flags().StringVar(&decodeOut, "out", "-", "output PPM file path, or '-' for stdout")
}

// writePPM writes a minimal binary PPM (P6), the smallest format that needs
// no third-party image encoder: the codec's contract ends at the
// PixelMap (spec §6), so this is ambient CLI convenience, not part of the
// core codec.
func writePPM(w *os.File, pm *blurhash.PixelMap) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", pm.Width, pm.Height)
	for _, p := range pm.Pix {
		bw.Write([]byte{p.R, p.G, p.B})
	}
	return bw.Flush()
}
