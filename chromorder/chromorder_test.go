package chromorder

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name   string
		class  int
		number int64
	}{
		{"1", classNumeric, 1},
		{"chr1", classNumeric, 1},
		{"Chromosome1", classNumeric, 1},
		{"CHR10", classNumeric, 10},
		{"chrX", classX, 0},
		{"Y", classY, 0},
		{"chromosome M", classM, 0},
		{"chr  2", classNumeric, 2},
	}
	for _, test := range tests {
		k, err := Parse(test.name)
		assert.NoError(t, err, test.name)
		assert.Equal(t, test.class, k.class, test.name)
		if test.class == classNumeric {
			assert.Equal(t, test.number, k.number, test.name)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, name := range []string{"chrZ", "0", "-1", "XY", ""} {
		_, err := Parse(name)
		assert.Error(t, err, name)
	}
}

func TestOrdering(t *testing.T) {
	names := []string{"chrY", "chr2", "chr10", "chrX", "chr1", "chrM"}
	sort.Slice(names, func(i, j int) bool { return Less(names[i], names[j]) })
	assert.Equal(t, []string{"chr1", "chr2", "chr10", "chrX", "chrY", "chrM"}, names)
}

func TestCompareEqualAcrossPrefixForms(t *testing.T) {
	k1, err := Parse("chr1")
	assert.NoError(t, err)
	k2, err := Parse("1")
	assert.NoError(t, err)
	assert.Equal(t, 0, k1.Compare(k2))
}
