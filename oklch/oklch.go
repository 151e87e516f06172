/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package oklch converts sRGB hex colors to the OKLCH cylindrical
// perceptual color space.
package oklch

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// achromaticThreshold is the rounded chroma below which a color has no
// meaningful hue. Per the oklch() convention the hue is then "none".
const achromaticThreshold = 0.0005

// Convert converts a hex color (#rgb, #rgba, #rrggbb, #rrggbbaa,
// case-insensitive) to an oklch() string. Values already in oklch()
// syntax pass through unchanged. Returns false for anything else.
func Convert(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "oklch(") {
		return value, true
	}
	if !isHex(trimmed) {
		return "", false
	}

	c, err := csscolorparser.Parse(trimmed)
	if err != nil {
		return "", false
	}

	l, ch, h := toOKLCH(c.R, c.G, c.B)
	return format(l, ch, h, c.A), true
}

// isHex reports whether value is one of the supported hex color forms.
func isHex(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	switch len(value) {
	case 4, 5, 7, 9:
	default:
		return false
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// toOKLCH maps sRGB channels in [0,1] to (Lightness, Chroma, Hue°).
// go-colorful handles the sRGB companding inverse and the D65 XYZ
// matrix; the XYZ→OKLab step uses the Ottosson cone-response and mixing
// matrices with a cube-root nonlinearity.
func toOKLCH(r, g, b float64) (l, chroma, hue float64) {
	x, y, z := colorful.Color{R: r, G: g, B: b}.Xyz()

	lms := [3]float64{
		0.8189330101*x + 0.3618667424*y - 0.1288597137*z,
		0.0329845436*x + 0.9293118715*y + 0.0361456387*z,
		0.0482003018*x + 0.2643662691*y + 0.6338517070*z,
	}
	for i, v := range lms {
		lms[i] = math.Cbrt(v)
	}

	l = 0.2104542553*lms[0] + 0.7936177850*lms[1] - 0.0040720468*lms[2]
	a := 1.9779984951*lms[0] - 2.4285922050*lms[1] + 0.4505937099*lms[2]
	bb := 0.0259040371*lms[0] + 0.7827717662*lms[1] - 0.8086757660*lms[2]

	chroma = math.Sqrt(a*a + bb*bb)
	hue = math.Atan2(bb, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return l, chroma, hue
}

// format renders oklch(L% C H) with the fixed rounding rules: lightness
// percent to 2 decimals, chroma to 4, hue to 1, alpha appended only when
// below 1 after rounding to 2 decimals.
func format(l, chroma, hue, alpha float64) string {
	var sb strings.Builder
	sb.WriteString("oklch(")
	sb.WriteString(formatFixed(l*100, 2))
	sb.WriteString("% ")

	if math.Round(chroma*10000)/10000 < achromaticThreshold {
		sb.WriteString("0 none")
	} else {
		sb.WriteString(formatFixed(chroma, 4))
		sb.WriteString(" ")
		sb.WriteString(formatFixed(hue, 1))
	}

	if a := math.Round(alpha*100) / 100; a < 1 {
		sb.WriteString(" / ")
		sb.WriteString(formatFixed(a, 2))
	}

	sb.WriteString(")")
	return sb.String()
}

// formatFixed rounds to the given number of decimals and trims trailing
// zeros, matching CSS number serialization.
func formatFixed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
