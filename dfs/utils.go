// Package dfs provides slice helpers used by cycle detection, including
// Booth's minimal-rotation algorithm.
package dfs

import (
	"cmp"
	"fmt"
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf[T comparable](s []T, val T) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig renders c as a comma-separated signature.
// Time Complexity: O(n).
func JoinSig[T any](c []T) string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice and never aliases s.
// Algorithm overview:
//  1. Duplicate the sequence to length 2n.
//  2. Maintain failure links f initialized to -1.
//  3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
//  4. Extract the rotation starting at index k.
//
// Time Complexity: O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return []T{}
	}
	doubled := make([]T, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]T, n)
	copy(res, doubled[k:k+n])

	return res
}
