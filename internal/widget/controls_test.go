package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightOptions(t *testing.T) {
	opts := WeightOptions([]int{300, 400, 950})
	assert.Equal(t, []WeightOption{
		{Code: "300", Label: "Light"},
		{Code: "400", Label: "Regular"},
		{Code: "950", Label: "950"},
	}, opts)
}

func TestStepLineHeight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		steps int
		want  string
	}{
		{name: "up", text: "1.5", steps: 1, want: "1.6"},
		{name: "down to whole", text: "2.1", steps: -1, want: "2"},
		{name: "clamped high", text: "4.9", steps: 5, want: "5"},
		{name: "clamped low", text: "-0.4", steps: -3, want: "-0.5"},
		{name: "through zero", text: "0.1", steps: -1, want: "0"},
		{name: "garbage starts at default", text: "abc", steps: 1, want: "1.6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepLineHeight(tt.text, tt.steps))
		})
	}
}

func TestExportCSS(t *testing.T) {
	assert.Equal(t, "", ExportCSS("", "400", "  ", "1.5"))
	assert.Equal(t, "font-size: 1.2rem;", ExportCSS("", "400", "1.2rem", "1.5"))
	assert.Equal(t, "font-family: \"Lora\", sans-serif;\nline-height: 1.8;", ExportCSS("Lora", "400", "", "1.8"))
}
