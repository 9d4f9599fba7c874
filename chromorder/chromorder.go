// Package chromorder implements the total order over chromosome names used
// to decide in what order chromosome views are scanned and emitted. (Which
// SNPs share a view is decided by exact chromosome-id string equality, not
// by this ordering.)
//
// Names are parsed with an optional "chr"/"chromosome" prefix; numeric
// chromosomes sort by integer value ahead of X, Y, and M, which sort in that
// relative order. Parsing follows the regexp-driven style
// fusion/gene_db.go uses for transcriptome key parsing.
package chromorder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/maxkphylo/mkerr"
)

var nameRE = regexp.MustCompile(`(?i)^(?:chromosome|chr)?\s*(\S+)$`)

// class orders the non-numeric chromosome tokens after all numeric ones.
const (
	classNumeric = 0
	classX       = 1
	classY       = 2
	classM       = 3
)

// Key is the comparable, totally-ordered representation of a parsed
// chromosome name. Two Keys compare with Compare; Key zero value is never
// produced by Parse (InvalidChromosome is returned instead).
type Key struct {
	class  int
	number int64 // valid only when class == classNumeric
	raw    string
}

// Parse validates name against the chromosome grammar
// `(?i)^(chromosome|chr)?\s*(\S+)$` and classifies the captured token as a
// positive integer, or as one of X/Y/M (case-insensitive). Any other token
// fails with mkerr.InvalidChromosome.
func Parse(name string) (Key, error) {
	m := nameRE.FindStringSubmatch(name)
	if m == nil {
		return Key{}, mkerr.InvalidChromosome{Name: name}
	}
	token := m[1]
	if n, err := strconv.ParseInt(token, 10, 64); err == nil && n > 0 {
		return Key{class: classNumeric, number: n, raw: name}, nil
	}
	switch strings.ToUpper(token) {
	case "X":
		return Key{class: classX, raw: name}, nil
	case "Y":
		return Key{class: classY, raw: name}, nil
	case "M":
		return Key{class: classM, raw: name}, nil
	}
	return Key{}, mkerr.InvalidChromosome{Name: name}
}

// Compare returns -1, 0, or +1 as k sorts before, equal to, or after k1.
// Numeric chromosomes order by integer value; among numerics, equal value
// implies equal key regardless of original textual form (e.g. "chr1" and
// "1" compare equal).
func (k Key) Compare(k1 Key) int {
	if k.class != k1.class {
		if k.class < k1.class {
			return -1
		}
		return 1
	}
	if k.class == classNumeric {
		switch {
		case k.number < k1.number:
			return -1
		case k.number > k1.number:
			return 1
		default:
			return 0
		}
	}
	return 0
}

// LT returns true iff k sorts strictly before k1.
func (k Key) LT(k1 Key) bool { return k.Compare(k1) < 0 }

// String returns the original name that produced k.
func (k Key) String() string { return k.raw }

// Less reports whether name a sorts before name b under the chromosome
// ordering grammar. It panics if either name fails to parse; callers that
// need graceful handling of invalid names should call Parse directly.
func Less(a, b string) bool {
	ka, err := Parse(a)
	if err != nil {
		panic(err)
	}
	kb, err := Parse(b)
	if err != nil {
		panic(err)
	}
	return ka.LT(kb)
}
