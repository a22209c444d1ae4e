package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFee(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"plain dollar amount", "$95", intPtr(95)},
		{"bare number", "250", intPtr(250)},
		{"zero", "0", intPtr(0)},
		{"dollar zero", "$0", intPtr(0)},
		{"none keyword", "none", intPtr(0)},
		{"embedded amount", "$0 intro annual fee, then $95", intPtr(0)},
		{"waived first year", "549 (waived first year)", intPtr(549)},
		{"decimal keeps integer part", "$95.50", intPtr(95)},
		{"not available", "N/A", nil},
		{"empty", "", nil},
		{"prose without number", "No annual fee", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFee(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"numeric", "690", intPtr(690)},
		{"numeric with spaces", " 750 ", intPtr(750)},
		{"not available", "N/A", nil},
		{"empty", "", nil},
		{"prose", "good", nil},
		{"range is not numeric", "670 - 850", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScore(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func intPtr(v int) *int {
	return &v
}
