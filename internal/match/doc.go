// Package match provides identifier normalization and Levenshtein based
// similarity used to suggest field names when a lookup fails.
package match
