// Package cycles: helper routines for canonicalizing cycle rotations.
// Directed cycles are equal iff one is a rotation of the other, so the
// canonical representative is the lexicographically minimal rotation;
// reversal is not an equivalence here (direction matters).
package cycles

import "strings"

// joinSignature concatenates the elements of c with commas, producing the
// dedup key for a canonical cycle.
// Time Complexity: O(total length of elements).
func joinSignature(c []string) string {
	return strings.Join(c, ",")
}

// minimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s, returned as a fresh slice of the same length.
// Algorithm overview:
//  1. Conceptually double the sequence to length 2n.
//  2. Maintain failure links f initialized to -1.
//  3. Track the candidate start k; for j from 1 to 2n-1, adjust k by
//     comparing against the current candidate via the failure links.
//  4. Extract the rotation starting at index k.
//
// Time Complexity: O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := append(append(make([]string, 0, 2*n), s...), s...)
	f := make([]int, 2*n) // failure link array
	for i := range f {
		f[i] = -1
	}
	k := 0 // starting index of the minimal rotation found so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1 // found a smaller rotation start
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // mismatch with i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1 // extend the matched prefix
		}
	}

	out := make([]string, n)
	copy(out, doubled[k:k+n])

	return out
}
