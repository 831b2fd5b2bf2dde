package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"hash/fnv"
	"unicode/utf8"
)

const (
	fontCharWidth = 0.55
	labelPadding  = 0.85
	minLabelChars = 3
)

// TruncateLabel shortens label so it fits in width at the given font size,
// marking the cut with "..".
func TruncateLabel(label string, width, fontSize float64) string {
	maxChars := max(minLabelChars, int(width*labelPadding/(fontSize*fontCharWidth)))
	if utf8.RuneCountInString(label) <= maxChars {
		return label
	}
	runes := []rune(label)
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

const (
	colorSaturation = 0.45
	colorLightness  = 0.55
)

// ColorForName returns a stable colour for an element name, so the same
// element gets the same swatch in every tree and every run.
func ColorForName(name string) string {
	h := hash(name)
	hue := float64(h%360) / 360
	r, g, b := hslToRGB(hue, colorSaturation, colorLightness)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return channel(p, q, h+1.0/3), channel(p, q, h), channel(p, q, h-1.0/3)
}

func channel(p, q, t float64) uint8 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	var v float64
	switch {
	case t < 1.0/6:
		v = p + (q-p)*6*t
	case t < 1.0/2:
		v = q
	case t < 2.0/3:
		v = p + (q-p)*(2.0/3-t)*6
	default:
		v = p
	}
	return uint8(v*255 + 0.5)
}
