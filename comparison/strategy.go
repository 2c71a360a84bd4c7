package comparison

import (
	"fmt"
	"reflect"
	"strings"
)

// Strategy decides equality and containment for assertions.
type Strategy interface {
	AreEqual(actual, other any) bool
	StringContains(s, sub string) bool
	// CountOccurrences counts the non-overlapping occurrences of sub in s.
	CountOccurrences(s, sub string) int
	IsStandard() bool
	// String describes the strategy in failure messages; empty for the standard one.
	String() string
}

type standard struct{}

// Standard returns the strategy based on deep equality and exact string matching.
func Standard() Strategy {
	return standard{}
}

func (standard) AreEqual(actual, other any) bool {
	return reflect.DeepEqual(actual, other)
}

func (standard) StringContains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func (standard) CountOccurrences(s, sub string) int {
	if sub == "" {
		return 0
	}

	return strings.Count(s, sub)
}

func (standard) IsStandard() bool { return true }

func (standard) String() string { return "" }

// ComparatorBasedStrategy compares values with a Comparator.
type ComparatorBasedStrategy struct {
	comparator Comparator
}

// ComparatorBased returns a strategy comparing values with c.
// A nil strategy or a nil comparator behaves like Standard.
func ComparatorBased(c Comparator) *ComparatorBasedStrategy {
	return &ComparatorBasedStrategy{comparator: c}
}

func (s *ComparatorBasedStrategy) AreEqual(actual, other any) bool {
	if s.IsStandard() {
		return standard{}.AreEqual(actual, other)
	}

	return s.comparator.Compare(actual, other) == 0
}

func (s *ComparatorBasedStrategy) StringContains(str, sub string) bool {
	if s.IsStandard() {
		return standard{}.StringContains(str, sub)
	}

	if sub == "" {
		return true
	}

	return s.indexFrom([]rune(str), []rune(sub), 0) >= 0
}

func (s *ComparatorBasedStrategy) CountOccurrences(str, sub string) int {
	if s.IsStandard() {
		return standard{}.CountOccurrences(str, sub)
	}

	if sub == "" {
		return 0
	}

	rs, rsub := []rune(str), []rune(sub)
	count := 0

	for i := s.indexFrom(rs, rsub, 0); i >= 0; i = s.indexFrom(rs, rsub, i+len(rsub)) {
		count++
	}

	return count
}

// indexFrom finds the first window of s, starting at from, equal to sub.
func (s *ComparatorBasedStrategy) indexFrom(str, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(str); i++ {
		if s.comparator.Compare(string(str[i:i+len(sub)]), string(sub)) == 0 {
			return i
		}
	}

	return -1
}

func (s *ComparatorBasedStrategy) IsStandard() bool {
	return s == nil || s.comparator == nil
}

func (s *ComparatorBasedStrategy) String() string {
	if s.IsStandard() {
		return standard{}.String()
	}

	return fmt.Sprintf("according to '%s' comparator", ComparatorName(s.comparator))
}
