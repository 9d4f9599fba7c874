// Package genotype defines the genotype call matrix abstraction: the Call
// code, decode rules, the Matrix/MutableMatrix interfaces, an in-memory
// implementation, and the subset/reverse views the scan engine runs over.
//
// The interface split (read-only Matrix plus a MutableMatrix sub-capability)
// follows encoding/fasta.Fasta's interface-plus-functional-options shape,
// generalized to the constructive (settable) case the ingest layer needs.
package genotype

import (
	"strconv"
	"strings"
)

// Call is a single encoded genotype call.
type Call int8

// The closed set of call codes.
const (
	CallA Call = 1
	CallB Call = 2
	CallH Call = 3
	CallN Call = -1
)

// DecodeCall maps a textual genotype token to a Call, given the SNP's
// A-allele and B-allele characters (0 if not yet known). Matching is
// case-insensitive for the literal tokens and for allele comparison.
//
// NA, N, -, NN, and the empty string all decode to N. H and HH decode to H.
// A case-insensitive match of aAllele decodes to A, of bAllele to B. The
// decimal strings "1", "2", "3", "-1" decode directly to that code. Anything
// else decodes to N.
func DecodeCall(token string, aAllele, bAllele byte) Call {
	switch strings.ToUpper(token) {
	case "NA", "N", "-", "NN", "":
		return CallN
	case "H", "HH":
		return CallH
	}
	if len(token) == 1 {
		c := upperByte(token[0])
		if aAllele != 0 && c == upperByte(aAllele) {
			return CallA
		}
		if bAllele != 0 && c == upperByte(bAllele) {
			return CallB
		}
	}
	if n, err := strconv.Atoi(token); err == nil {
		switch Call(n) {
		case CallA, CallB, CallH, CallN:
			return Call(n)
		}
	}
	return CallN
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// isNucleotide reports whether b is one of A, C, G, T (case-insensitive).
func isNucleotide(b byte) bool {
	switch upperByte(b) {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// InferAlleles inspects the distinct nucleotide codes appearing in tokens
// and, if exactly two distinct codes from {A,C,G,T} are present, returns
// them in order of first appearance as (aAllele, bAllele, true). Otherwise
// returns (0, 0, false), meaning every call for this SNP should decode to N.
func InferAlleles(tokens []string) (aAllele, bAllele byte, ok bool) {
	var first, second byte
	for _, tok := range tokens {
		if len(tok) != 1 {
			continue
		}
		b := upperByte(tok[0])
		if !isNucleotide(b) {
			continue
		}
		switch {
		case first == 0:
			first = b
		case b == first:
			// already seen
		case second == 0:
			second = b
		case b != second:
			return 0, 0, false // a third distinct nucleotide appeared
		}
	}
	if first != 0 && second != 0 {
		return first, second, true
	}
	return 0, 0, false
}
