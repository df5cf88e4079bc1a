package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size       int
	TopColor   color.RGBA
	LeftColor  color.RGBA
	RightColor color.RGBA
}

// DevelopmentIconConfig is the tray icon for development builds.
func DevelopmentIconConfig() IconConfig {
	return IconConfig{
		Size:       22,
		TopColor:   color.RGBA{255, 190, 111, 255}, // Light orange
		LeftColor:  color.RGBA{230, 97, 0, 255},    // Orange
		RightColor: color.RGBA{198, 70, 0, 255},    // Dark orange
	}
}

// ProductionIconConfig is the tray icon for production builds.
func ProductionIconConfig() IconConfig {
	return IconConfig{
		Size:       22,
		TopColor:   color.RGBA{153, 193, 241, 255}, // Light blue
		LeftColor:  color.RGBA{53, 132, 228, 255},  // Blue
		RightColor: color.RGBA{26, 95, 180, 255},   // Dark blue
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate draws an isometric cube and returns it as PNG bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	g.drawCube(img)

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawCube fills three faces of a cube: a rhombus on top and two
// parallelograms below it meeting on the vertical center line.
func (g *IconGenerator) drawCube(img *image.RGBA) {
	s := float64(g.config.Size)
	cx := s / 2
	half := s/2 - 1 // horizontal half-width
	q := s / 4      // rise of the top rhombus edges
	topY := 1.0
	midY := topY + q
	bottomY := s - 1

	for y := 0; y < g.config.Size; y++ {
		for x := 0; x < g.config.Size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			dx := fx - cx
			if dx < -half || dx > half {
				continue
			}
			slope := q * abs(dx) / half

			// Top face: between the upper and lower rhombus edges
			if fy >= topY+slope && fy <= midY+q-slope {
				img.Set(x, y, g.config.TopColor)
				continue
			}

			// Side faces hang below the rhombus edges
			lower := bottomY - q + q*(1-abs(dx)/half)
			if fy > midY+q-slope && fy <= lower {
				if dx < 0 {
					img.Set(x, y, g.config.LeftColor)
				} else {
					img.Set(x, y, g.config.RightColor)
				}
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// GenerateModeIcon generates the tray icon for a build mode.
func GenerateModeIcon(development bool) []byte {
	if development {
		return NewIconGenerator(DevelopmentIconConfig()).Generate()
	}
	return NewIconGenerator(ProductionIconConfig()).Generate()
}
