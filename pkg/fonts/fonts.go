// Package fonts provides the Go font faces used to measure and draw text.
//
// Code is set in Go Mono and prose in Go Regular (Go Italic for italic
// labels). The faces ship with golang.org/x/image, so measurements are the
// same on every machine regardless of installed fonts.
//
// [Measurer] implements scene.Measurer from the real glyph advances:
//
//	m := fonts.NewMeasurer()
//	code := scene.NewCode(m, lines, scene.CodeOptions{Language: "go"})
package fonts

import (
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/codevideo/pkg/scene"
)

// Family names of the embedded faces.
const (
	Mono    = "Go Mono"
	Regular = "Go"
	Italic  = "Go Italic"
)

// measureSize is the pixel size faces are measured at. Advances scale
// linearly, so any size works; larger sizes lose less to rounding.
const measureSize = 100

var (
	parseOnce sync.Once
	parsed    map[string]*truetype.Font
	parseErr  error
)

func load() (map[string]*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed = make(map[string]*truetype.Font, 3)
		for name, ttf := range map[string][]byte{Mono: gomono.TTF, Regular: goregular.TTF, Italic: goitalic.TTF} {
			f, err := truetype.Parse(ttf)
			if err != nil {
				parseErr = err
				return
			}
			parsed[name] = f
		}
	})
	return parsed, parseErr
}

// Resolve maps a requested family onto an embedded face. Families naming a
// monospace font resolve to Mono; everything else to Regular, or Italic
// when italic is set.
func Resolve(family string, italic bool) string {
	f := strings.ToLower(family)
	for _, mono := range []string{"mono", "courier", "consol", "code", "menlo"} {
		if strings.Contains(f, mono) {
			return Mono
		}
	}
	if italic {
		return Italic
	}
	return Regular
}

// Font returns the parsed face for style.
func Font(style scene.TextStyle) (*truetype.Font, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	return all[Resolve(style.Font, style.Italic)], nil
}

// Face returns a face for style at size pixels.
func Face(style scene.TextStyle, size float64) (font.Face, error) {
	f, err := Font(style)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
}

// Measurer measures text with the embedded faces. Each line is one text
// size tall. The zero value is not usable; call NewMeasurer.
type Measurer struct {
	mu    sync.Mutex
	faces map[string]font.Face
}

// NewMeasurer returns a Measurer. It panics if the embedded fonts fail to
// parse, which only happens with a corrupt build.
func NewMeasurer() *Measurer {
	if _, err := load(); err != nil {
		panic("fonts: " + err.Error())
	}
	return &Measurer{faces: make(map[string]font.Face)}
}

func (m *Measurer) face(style scene.TextStyle) font.Face {
	name := Resolve(style.Font, style.Italic)
	if f, ok := m.faces[name]; ok {
		return f
	}
	f := truetype.NewFace(parsed[name], &truetype.Options{Size: measureSize, DPI: 72, Hinting: font.HintingNone})
	m.faces[name] = f
	return f
}

// Measure implements scene.Measurer.
func (m *Measurer) Measure(s string, style scene.TextStyle) (float64, float64) {
	size := style.Size
	if size == 0 {
		size = scene.DefaultTextSize
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.face(style)
	lines := strings.Split(s, "\n")
	var widest float64
	for _, l := range lines {
		adv := font.MeasureString(face, l)
		widest = max(widest, float64(adv)/64)
	}
	return widest / measureSize * size, float64(len(lines)) * size
}

var _ scene.Measurer = (*Measurer)(nil)
