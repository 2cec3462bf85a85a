package compacttrie_test

import (
	"fmt"

	"github.com/milden6/wordsearch/compacttrie"
)

func ExampleNew() {
	trie, err := compacttrie.New([]string{"cats", "blip", "catnip", "cat"})
	if err != nil {
		panic(err)
	}

	suffixes := "nsx"
	for i, r := range trie.ContainsFurther("cat", suffixes, nil) {
		fmt.Printf("cat%c contains=%v further=%v\n", suffixes[i], r.Contains, r.Further)
	}

	// Output:
	// catn contains=false further=true
	// cats contains=true further=false
	// catx contains=false further=false
}

func ExampleBuilder() {
	b := compacttrie.NewBuilder()
	for _, word := range []string{"act", "acted", "actor"} {
		if err := b.Add(word); err != nil {
			panic(err)
		}
	}

	trie, err := b.Finish()
	if err != nil {
		panic(err)
	}
	fmt.Println(trie.Size(), trie.NumRows(), trie.Words())

	// Output:
	// 3 6 [act acted actor]
}
