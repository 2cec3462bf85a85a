/*
Package wordsearch finds the words hidden in a grid of letters, and provides
the prefix dictionaries that make the search fast.

A grid solver walks every path of adjacent cells and, at each step, must
know two things about the letters spelled so far: whether they form a word,
and whether any longer word starts with them. The second answer prunes the
search. The dictionaries in this module all answer both, through the
dictionary.Dictionary interface, and they also answer them for a whole set
of candidate next letters in one call to ContainsFurther, walking the
common stem only once.

There are four kinds, selected by name with New:

	trie          a pointer trie whose nodes live in one slice, with sorted edges
	compact_trie  a read only trie packed into a single byte buffer
	sorted_list   a sorted slice of words searched by bisection
	perfect_hash  minimal perfect hashes of the words and of their prefixes

The compact trie is the one to use for large dictionaries. Nodes are laid
out row by row, the children of a node are found with a bit test and a
popcount, and the whole structure is a few bytes per node. It can be saved
with Save() and opened again with Load(). A summary of the node format is
found at the top of compacttrie/node.go.

The tries hand out query sessions with NewSession(). A session remembers
the nodes on the path of the previous query, so that a following query
sharing a prefix with it starts where the shared part ends. This is the
access pattern of a grid solver. Tries themselves hold no such state and
may be queried from several goroutines, while each session belongs to one.

The solver package holds the grid search, the wordlist package reads word
files, and cmd/wordsearch is the command line front end.
*/
package wordsearch
