package errmsg

import (
	"assertkit/comparison"
)

const (
	onlyOnceHeader    = "expecting:\n<%s>\n to appear only once in:\n<%s>\n"
	onlyOnceNone      = onlyOnceHeader + " but it did not appear."
	onlyOnceNoneBy    = onlyOnceHeader + " but it did not appear %s."
	onlyOnceSeveral   = onlyOnceHeader + " but it appeared %s times."
	onlyOnceSeveralBy = onlyOnceHeader + " but it appeared %s times %s."
)

// ShouldContainOnlyOnce creates the message of a failed assertion verifying that
// stringToSearch contains substring exactly once, found occurrences times.
// Counts below 1 render as "did not appear". An optional non-standard strategy
// is named at the end of the message.
func ShouldContainOnlyOnce(stringToSearch, substring string, occurrences int, strategy ...comparison.Strategy) Factory {
	var custom comparison.Strategy
	if len(strategy) > 0 && strategy[0] != nil && !strategy[0].IsStandard() {
		custom = strategy[0]
	}

	if occurrences < 1 {
		if custom != nil {
			return newBasicFactory(onlyOnceNoneBy, substring, stringToSearch, unquoted(custom.String()))
		}

		return newBasicFactory(onlyOnceNone, substring, stringToSearch)
	}

	if custom != nil {
		return newBasicFactory(onlyOnceSeveralBy, substring, stringToSearch, occurrences, unquoted(custom.String()))
	}

	return newBasicFactory(onlyOnceSeveral, substring, stringToSearch, occurrences)
}
