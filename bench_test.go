package wordsearch

import (
	"math/rand"
	"testing"

	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/internal/dicttest"
	"github.com/milden6/wordsearch/solver"
)

const benchLetters = "etaoinshrdlucmfwyp"

func benchWords() []string {
	r := rand.New(rand.NewSource(1))
	return dicttest.RandomWords(r, 50000, 9, benchLetters)
}

func benchGrid(b *testing.B) *solver.Grid {
	r := rand.New(rand.NewSource(2))
	lines := make([]string, 5)
	for i := range lines {
		line := make([]byte, 5)
		for j := range line {
			line[j] = benchLetters[r.Intn(len(benchLetters))]
		}
		lines[i] = string(line)
	}
	g, err := solver.NewGrid(lines)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkBuild(b *testing.B) {
	words := benchWords()
	for _, kind := range Kinds() {
		b.Run(kind, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := New(kind, words); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkContainsFurther(b *testing.B) {
	words := benchWords()
	for _, kind := range Kinds() {
		d, err := New(kind, words)
		if err != nil {
			b.Fatal(err)
		}
		s := dictionary.Session(d)
		b.Run(kind, func(b *testing.B) {
			var out []dictionary.Result
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out = s.ContainsFurther(words[i%len(words)], benchLetters, out[:0])
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	words := benchWords()
	g := benchGrid(b)
	for _, kind := range Kinds() {
		d, err := New(kind, words)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(kind, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				solver.Solve(d, g)
			}
		})
	}
}
