package genotype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCall(t *testing.T) {
	const a, b byte = 'A', 'G'
	tests := []struct {
		token string
		want  Call
	}{
		{"NA", CallN},
		{"N", CallN},
		{"-", CallN},
		{"NN", CallN},
		{"", CallN},
		{"H", CallH},
		{"HH", CallH},
		{"h", CallH},
		{"1", CallA},
		{"2", CallB},
		{"3", CallH},
		{"-1", CallN},
		{"A", CallA},
		{"a", CallA},
		{"G", CallB},
		{"g", CallB},
		{"T", CallN}, // neither allele
	}
	for _, test := range tests {
		got := DecodeCall(test.token, a, b)
		assert.Equal(t, test.want, got, test.token)
	}
}

func TestInferAlleles(t *testing.T) {
	a, b, ok := InferAlleles([]string{"A", "A", "G", "A"})
	assert.True(t, ok)
	assert.Equal(t, byte('A'), a)
	assert.Equal(t, byte('G'), b)

	_, _, ok = InferAlleles([]string{"A", "C", "G"})
	assert.False(t, ok)

	_, _, ok = InferAlleles([]string{"NA", "N", "-"})
	assert.False(t, ok)
}
