package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Castaway Crew", "castaway-crew"},
		{"  lots   of   spaces  ", "lots-of-spaces"},
		{"Punch! & Judy?", "punch-judy"},
		{"--edge--dashes--", "edge-dashes"},
		{"MiXeD CaSe", "mixed-case"},
		{"!!!", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, baseSlug(tc.in), "input %q", tc.in)
	}
}

func TestRandomSuffix(t *testing.T) {
	s := randomSuffix(4)
	assert.Len(t, s, 4)
	for _, r := range s {
		assert.Contains(t, suffixLetters, string(r))
	}
}
