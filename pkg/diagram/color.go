package diagram

import (
	"crypto/sha1"
	"math/big"
	"strconv"

	"github.com/matzehuels/codevideo/pkg/errors"
)

// RandomColor selects a palette entry derived from the box text.
const RandomColor = "random"

// randomOpacity is the fill opacity of palette-selected backgrounds.
const randomOpacity = 0.2

// DefaultPalette is the colour palette used for RandomColor backgrounds.
var DefaultPalette = []string{"#00F6F6", "#F6A300", "#7BF600"}

// ParseColor resolves a background colour specification into a "#RRGGBB"
// colour and an opacity:
//
//   - "random" picks palette[sha1(text) mod len(palette)] at opacity 0.2
//   - "#RRGGBB" is fully opaque
//   - "#RRGGBBAA" takes its opacity from the alpha byte
//
// Anything else fails with INVALID_COLOR.
func ParseColor(value, text string, palette []string) (string, float64, error) {
	if value == RandomColor {
		if len(palette) == 0 {
			return "", 0, errors.New(errors.ErrCodeInvalidColor, "random colour needs a non-empty palette")
		}
		sum := sha1.Sum([]byte(text))
		idx := new(big.Int).Mod(new(big.Int).SetBytes(sum[:]), big.NewInt(int64(len(palette))))
		return palette[idx.Int64()], randomOpacity, nil
	}
	if len(value) < 1 || value[0] != '#' || !isHex(value[1:]) {
		return "", 0, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", value)
	}
	switch len(value) {
	case 7:
		return value, 1, nil
	case 9:
		alpha, _ := strconv.ParseUint(value[7:], 16, 8)
		return value[:7], float64(alpha) / 255, nil
	}
	return "", 0, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", value)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}
