package dictionary

// EnumFn is called for every node visited during an enumeration, with the
// prefix spelled by the path to it and whether that prefix is a word. The
// word slice is reused between calls and must be copied to be kept.
type EnumFn = func(word []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Enumerator is implemented by dictionaries that can visit their nodes in
// ascending order.
type Enumerator interface {
	Enumerate(fn EnumFn)
}

// Words returns every word held by e in ascending order.
func Words(e Enumerator) []string {
	var words []string
	e.Enumerate(func(word []byte, final bool) EnumerationResult {
		if final {
			words = append(words, string(word))
		}
		return Continue
	})
	return words
}
