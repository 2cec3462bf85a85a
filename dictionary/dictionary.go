// Package dictionary defines the query contract shared by every word
// dictionary in this module, the lowercase alphabet they are built over, and
// the helpers used to prepare word lists for them.
package dictionary

// Result is the answer for one candidate suffix of a ContainsFurther call.
type Result struct {
	// Contains is true if stem+suffix is a word.
	Contains bool
	// Further is true if some longer word starts with stem+suffix.
	Further bool
}

// Dictionary is the interface the grid solver uses to test partial paths.
//
// Implementations answer queries without mutating shared state, so a
// Dictionary may be queried from several goroutines at once. Cached query
// sessions are handed out separately, see SessionProvider.
type Dictionary interface {
	// Contains reports whether word was added to the dictionary. The empty
	// string is a valid word.
	Contains(word string) bool

	// Further reports whether the node reached by word has at least one
	// child, that is whether some word is strictly longer than word and
	// starts with it. It does not depend on word itself being a word.
	Further(word string) bool

	// ContainsFurther appends to out one Result for each byte c of
	// suffixes, in order, equal to (Contains(stem+c), Further(stem+c)).
	// The stem is walked once. If stem cannot be reached, every Result is
	// the zero value.
	ContainsFurther(stem, suffixes string, out []Result) []Result

	// Size returns the number of distinct words.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool
}

// SessionProvider is implemented by dictionaries that can hand out a query
// session. A session answers the same queries as its dictionary, but keeps
// the search state of the previous query so that a following query sharing
// a prefix with it resumes instead of starting at the root.
//
// A session is not safe for concurrent use. Give each goroutine its own.
type SessionProvider interface {
	NewSession() Dictionary
}

// Session returns a new query session for d if d provides them, and d
// itself otherwise.
func Session(d Dictionary) Dictionary {
	if p, ok := d.(SessionProvider); ok {
		return p.NewSession()
	}
	return d
}
