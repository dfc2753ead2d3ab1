package widget

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmcdole/fontpeek/internal/page"
)

const (
	DefaultWeight     = "400"
	DefaultLineHeight = "1.5"

	MinLineHeight  = -0.5
	MaxLineHeight  = 5.0
	LineHeightStep = 0.1
)

var weightLabels = map[int]string{
	100: "Thin",
	200: "Extra-Light",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "Semi-Bold",
	700: "Bold",
	800: "Extra-Bold",
	900: "Black",
}

// WeightOption is one entry of the weight picker
type WeightOption struct {
	Code  string
	Label string
}

// WeightOptions builds the picker entries for weights, in the given order
func WeightOptions(weights []int) []WeightOption {
	opts := make([]WeightOption, 0, len(weights))
	for _, w := range weights {
		code := strconv.Itoa(w)
		label, ok := weightLabels[w]
		if !ok {
			label = code
		}
		opts = append(opts, WeightOption{Code: code, Label: label})
	}
	return opts
}

// StepLineHeight moves text by steps increments, clamped to the slider range.
// Unparseable text starts from the default.
func StepLineHeight(text string, steps int) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		v, _ = strconv.ParseFloat(DefaultLineHeight, 64)
	}
	v += float64(steps) * LineHeightStep
	v = math.Max(MinLineHeight, math.Min(MaxLineHeight, v))
	v = math.Round(v*10) / 10
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportCSS returns the declarations the user changed from the defaults,
// one per line, or "" when nothing changed
func ExportCSS(currentFont, weight, size, lineHeight string) string {
	var lines []string
	if currentFont != "" {
		lines = append(lines, "font-family: "+page.FamilyValue(currentFont)+";")
	}
	if w := strings.TrimSpace(weight); w != "" && w != DefaultWeight {
		lines = append(lines, "font-weight: "+w+";")
	}
	if s := page.ParseSize(size); s != "" {
		lines = append(lines, "font-size: "+s+";")
	}
	if lh := strings.TrimSpace(lineHeight); lh != "" && lh != DefaultLineHeight {
		lines = append(lines, "line-height: "+lh+";")
	}
	return strings.Join(lines, "\n")
}
