package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrjoshuak/go-blurhash"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the flat/gradient/prefix/corruption scenarios against the fixture store",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarios := []struct {
			name string
			run  func() error
		}{
			{"flat-black round trip", demoFlatBlack},
			{"flat-midgray round trip", demoFlatMidGray},
			{"gradient encode", demoGradient},
			{"size-prefix round trip", demoPrefix},
			{"corrupted length detection", demoCorruptedLength},
		}

		failed := 0
		for _, s := range scenarios {
			err := s.run()
			if err != nil {
				failed++
				fmt.Printf("FAIL  %s: %v\n", s.name, err)
				logger.Error("scenario failed", slog.String("scenario", s.name), slog.Any("err", err))
				continue
			}
			fmt.Printf("PASS  %s\n", s.name)
			logger.Info("scenario passed", slog.String("scenario", s.name))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
		}
		return nil
	},
}

func demoFlatBlack() error {
	pm, err := pixelMapFromFixture("flat-black")
	if err != nil {
		return err
	}
	hash, err := blurhash.Encode(pm, blurhash.ExplicitRatio(4, 3), false)
	if err != nil {
		return err
	}
	if want := 6 + 2*(4*3-1); len(hash) != want {
		return fmt.Errorf("expected a %d-character hash for a 4x3-component encode, got %q", want, hash)
	}
	return nil
}

func demoFlatMidGray() error {
	pm, err := pixelMapFromFixture("flat-midgray")
	if err != nil {
		return err
	}
	hash, err := blurhash.Encode(pm, blurhash.ExplicitRatio(4, 3), false)
	if err != nil {
		return err
	}
	decoded, err := blurhash.Decode(hash, pm.Width, pm.Height, 1.0)
	if err != nil {
		return err
	}
	if decoded.Width != pm.Width || decoded.Height != pm.Height {
		return fmt.Errorf("decoded dimensions %dx%d do not match source %dx%d",
			decoded.Width, decoded.Height, pm.Width, pm.Height)
	}
	return nil
}

func demoGradient() error {
	pm, err := pixelMapFromFixture("gradient-h-16x1")
	if err != nil {
		return err
	}
	_, err = blurhash.Encode(pm, blurhash.InferRatio(), false)
	return err
}

func demoPrefix() error {
	pm, err := pixelMapFromFixture("checker-64")
	if err != nil {
		return err
	}
	hash, err := blurhash.Encode(pm, blurhash.ExplicitRatio(4, 3), true)
	if err != nil {
		return err
	}
	decoded, err := blurhash.Decode(hash, 0, 0, 1.0)
	if err != nil {
		return err
	}
	if decoded.Width != pm.Width || decoded.Height != pm.Height {
		return fmt.Errorf("prefix round trip lost dimensions: got %dx%d, want %dx%d",
			decoded.Width, decoded.Height, pm.Width, pm.Height)
	}
	return nil
}

func demoCorruptedLength() error {
	pm, err := pixelMapFromFixture("sky-reference-32x20")
	if err != nil {
		return err
	}
	hash, err := blurhash.Encode(pm, blurhash.ExplicitRatio(4, 3), false)
	if err != nil {
		return err
	}
	truncated := hash[:len(hash)-2]
	_, err = blurhash.Decode(truncated, pm.Width, pm.Height, 1.0)
	if !errors.Is(err, blurhash.ErrInvalidHashLength) {
		return fmt.Errorf("expected ErrInvalidHashLength for truncated hash %q, got %v", truncated, err)
	}
	return nil
}
