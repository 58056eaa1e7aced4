package palette

// Border is the foreground color chosen for contrast against a base color.
type Border int

const (
	White Border = iota
	Black
)

// brightnessThreshold is compared in per-mille units to keep the boundary exact.
const brightnessThreshold = 128

func (b Border) String() string {
	if b == Black {
		return "black"
	}
	return "white"
}

// RGB returns the border as a color.
func (b Border) RGB() RGB {
	if b == Black {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

// Brightness returns the luma-weighted brightness 0.299R + 0.587G + 0.114B.
func Brightness(c RGB) float64 {
	return float64(lumaMille(c)) / 1000
}

// ContrastBorder returns Black for colors brighter than 128 and White otherwise.
func ContrastBorder(c RGB) Border {
	if lumaMille(c) > brightnessThreshold*1000 {
		return Black
	}
	return White
}

func lumaMille(c RGB) int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}
