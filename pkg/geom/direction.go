package geom

import (
	"strings"

	"github.com/matzehuels/codevideo/pkg/errors"
)

var directionNames = map[string]Vec{
	"origin":     Origin,
	"center":     Origin,
	"up":         Up,
	"down":       Down,
	"left":       Left,
	"right":      Right,
	"ul":         UL,
	"ur":         UR,
	"dl":         DL,
	"dr":         DR,
	"up_left":    UL,
	"up_right":   UR,
	"down_left":  DL,
	"down_right": DR,
}

// ParseDirection resolves a direction name such as "left", "UP" or "dr" as
// used in script files. Unknown names fail with INVALID_DIRECTION.
func ParseDirection(name string) (Vec, error) {
	if v, ok := directionNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	return Vec{}, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q", name)
}
