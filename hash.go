package blurhash

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mrjoshuak/go-blurhash/internal/base83"
	"github.com/mrjoshuak/go-blurhash/internal/dct"
	"github.com/mrjoshuak/go-blurhash/internal/gamma"
	"github.com/mrjoshuak/go-blurhash/internal/quant"
)

// assembleHash packs components (row-major, components[0] is DC) into the
// BlurHash wire format per spec §4.5, optionally prefixed with "<W:H>".
func assembleHash(comps []dct.Component, x, y, srcW, srcH int, withPrefix bool) (string, error) {
	dcR := gamma.ToSRGB(comps[0].R)
	dcG := gamma.ToSRGB(comps[0].G)
	dcB := gamma.ToSRGB(comps[0].B)
	dcPacked := int(dcR)<<16 | int(dcG)<<8 | int(dcB)

	ac := comps[1:]
	maxAC := 0.0
	for _, c := range ac {
		maxAC = math.Max(maxAC, math.Max(math.Abs(c.R), math.Max(math.Abs(c.G), math.Abs(c.B))))
	}

	quantMaxAC := 0
	if len(ac) > 0 {
		quantMaxAC = clampInt(int(math.Floor(maxAC*166-0.5)), 0, 82)
	}
	acnf := float64(quantMaxAC+1) / 166

	header := (x - 1) + (y-1)*9

	var b strings.Builder
	if withPrefix {
		fmt.Fprintf(&b, "<%d:%d>", srcW, srcH)
	}

	headerStr, err := base83.Encode(header, 1)
	if err != nil {
		return "", err
	}
	maxStr, err := base83.Encode(quantMaxAC, 1)
	if err != nil {
		return "", err
	}
	dcStr, err := base83.Encode(dcPacked, 4)
	if err != nil {
		return "", err
	}
	b.WriteString(headerStr)
	b.WriteString(maxStr)
	b.WriteString(dcStr)

	for _, c := range ac {
		qr := quant.Quantize(c.R / acnf)
		qg := quant.Quantize(c.G / acnf)
		qb := quant.Quantize(c.B / acnf)
		acVal := qr*361 + qg*19 + qb
		acStr, err := base83.Encode(acVal, 2)
		if err != nil {
			return "", err
		}
		b.WriteString(acStr)
	}

	return b.String(), nil
}

// decoded holds the parsed-but-not-yet-reconstructed contents of a hash.
type decoded struct {
	x, y       int
	components []dct.Component
}

// parseHash validates and decodes a hash body (prefix already stripped) per
// spec §4.5 steps 2-6.
func parseHash(body string, punch float64) (*decoded, error) {
	if len(body) < 6 {
		return nil, fmt.Errorf("%w: hash body %q shorter than 6 characters", ErrInvalidHashLength, body)
	}

	header, err := base83.Decode(body[0:1])
	if err != nil {
		return nil, wrapCharErr(err)
	}
	y := header/9 + 1
	x := header%9 + 1

	quantMaxAC, err := base83.Decode(body[1:2])
	if err != nil {
		return nil, wrapCharErr(err)
	}
	maxValue := float64(quantMaxAC+1) / 166

	expectedLen := 4 + 2*x*y
	if len(body) != expectedLen {
		return nil, fmt.Errorf("%w: body length %d, expected %d for %dx%d components", ErrInvalidHashLength, len(body), expectedLen, x, y)
	}

	dcPacked, err := base83.Decode(body[2:6])
	if err != nil {
		return nil, wrapCharErr(err)
	}
	dc := dct.Component{
		R: gamma.ToLinear(uint8((dcPacked >> 16) & 0xff)),
		G: gamma.ToLinear(uint8((dcPacked >> 8) & 0xff)),
		B: gamma.ToLinear(uint8(dcPacked & 0xff)),
	}

	n := x * y
	comps := make([]dct.Component, n)
	comps[0] = dc

	for i := 1; i < n; i++ {
		start := 6 + 2*(i-1)
		acVal, err := base83.Decode(body[start : start+2])
		if err != nil {
			return nil, wrapCharErr(err)
		}
		qr := acVal / 361
		rem := acVal % 361
		qg := rem / 19
		qb := rem % 19
		comps[i] = dct.Component{
			R: quant.Dequantize(qr) * maxValue * punch,
			G: quant.Dequantize(qg) * maxValue * punch,
			B: quant.Dequantize(qb) * maxValue * punch,
		}
	}

	return &decoded{x: x, y: y, components: comps}, nil
}

func wrapCharErr(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
}

// splitPrefix separates an optional "<W:H>" size prefix from the rest of a
// hash string. ok is false when no prefix is present.
func splitPrefix(s string) (w, h int, rest string, ok bool, err error) {
	if len(s) == 0 || s[0] != '<' {
		return 0, 0, s, false, nil
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return 0, 0, s, false, fmt.Errorf("%w: unterminated size prefix", ErrInvalidHashLength)
	}
	inner := s[1:end]
	parts := strings.SplitN(inner, ":", 2)
	if len(parts) != 2 {
		return 0, 0, s, false, fmt.Errorf("%w: malformed size prefix %q", ErrInvalidHashLength, inner)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, s, false, fmt.Errorf("%w: malformed size prefix %q", ErrInvalidHashLength, inner)
	}
	return w, h, s[end+1:], true, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
