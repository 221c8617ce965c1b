package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-blurhash"
	"github.com/mrjoshuak/go-blurhash/internal/base83"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <hash>",
	Short: "Print header fields of a BlurHash string without a full decode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := args[0]

		w, h, body, hasPrefix, err := splitPrefixForInspect(hash)
		if err != nil {
			return err
		}

		if len(body) < 6 {
			return blurhash.ErrInvalidHashLength
		}

		header, err := base83.Decode(body[0:1])
		if err != nil {
			return err
		}
		quantMaxAC, err := base83.Decode(body[1:2])
		if err != nil {
			return err
		}

		x := header%9 + 1
		y := header/9 + 1

		fmt.Printf("header byte:   %d\n", header)
		fmt.Printf("x components:  %d\n", x)
		fmt.Printf("y components:  %d\n", y)
		fmt.Printf("quant_max_ac:  %d\n", quantMaxAC)
		fmt.Printf("expected len:  %d\n", 4+2*x*y)
		fmt.Printf("actual len:    %d\n", len(body))
		if hasPrefix {
			fmt.Printf("size prefix:   %dx%d\n", w, h)
		} else {
			fmt.Printf("size prefix:   none\n")
		}
		return nil
	},
}

// splitPrefixForInspect mirrors the package-private prefix parsing used by
// Decode, duplicated here in miniature because inspect only ever needs the
// width/height/body split, never a full reconstruction.
func splitPrefixForInspect(s string) (w, h int, body string, hasPrefix bool, err error) {
	if len(s) == 0 || s[0] != '<' {
		return 0, 0, s, false, nil
	}
	end := -1
	for i, c := range s {
		if c == '>' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, 0, "", false, fmt.Errorf("unterminated size prefix")
	}
	var ww, hh int
	if _, scanErr := fmt.Sscanf(s[1:end], "%d:%d", &ww, &hh); scanErr != nil {
		return 0, 0, "", false, fmt.Errorf("malformed size prefix: %w", scanErr)
	}
	if ww <= 0 || hh <= 0 {
		return 0, 0, "", false, fmt.Errorf("size prefix dimensions must be positive")
	}
	return ww, hh, s[end+1:], true, nil
}
