// Package solver finds the dictionary words that can be traced through a
// letter grid, moving between cells that touch horizontally, vertically or
// diagonally and never entering a cell twice on the same path.
package solver

import (
	"context"
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/milden6/wordsearch/dictionary"
)

// Solution maps each word found to every path spelling it.
type Solution map[string][]Path

// Words returns the words found in ascending order.
func (s Solution) Words() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// NumPaths returns the number of paths over all words.
func (s Solution) NumPaths() int {
	n := 0
	for _, paths := range s {
		n += len(paths)
	}
	return n
}

var directions = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type search struct {
	d       dictionary.Dictionary
	g       *Grid
	visited []bool
	path    Path
	word    []byte
	// results[k] is the ContainsFurther buffer for paths of length k
	results   [][]dictionary.Result
	neighbors [][]Position
	sol       Solution

	ctx   context.Context
	steps int
	err   error
}

// ctxCheckInterval is the number of visited cells between context checks.
var ctxCheckInterval = 1024

// Solve returns every word of d found in g. Queries go through a session
// of d when it provides one.
func Solve(d dictionary.Dictionary, g *Grid) Solution {
	sol, _ := solve(context.Background(), d, g)
	return sol
}

func solve(ctx context.Context, d dictionary.Dictionary, g *Grid) (Solution, error) {
	s := &search{
		d:       dictionary.Session(d),
		g:       g,
		visited: make([]bool, g.rows*g.cols),
		sol:     make(Solution),
		ctx:     ctx,
	}

	// every cell is a one letter path from the empty stem
	var starts []Position
	var letters []byte
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{r, c}
			if l := g.At(p); l != hole {
				starts = append(starts, p)
				letters = append(letters, l)
			}
		}
	}

	results := s.d.ContainsFurther("", string(letters), nil)
	for i, p := range starts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.visit(p, results[i])
		if s.err != nil {
			return nil, s.err
		}
	}
	return s.sol, nil
}

func (s *search) visit(p Position, r dictionary.Result) {
	if s.err != nil || !r.Contains && !r.Further {
		return
	}
	if s.steps++; s.steps%ctxCheckInterval == 0 {
		if s.err = s.ctx.Err(); s.err != nil {
			return
		}
	}

	s.visited[p.Row*s.g.cols+p.Col] = true
	s.path = append(s.path, p)
	s.word = append(s.word, s.g.At(p))

	if r.Contains {
		word := string(s.word)
		s.sol[word] = append(s.sol[word], append(Path(nil), s.path...))
	}

	if r.Further {
		depth := len(s.path)
		for len(s.results) <= depth {
			s.results = append(s.results, nil)
			s.neighbors = append(s.neighbors, nil)
		}

		next := s.neighbors[depth][:0]
		var letters [len(directions)]byte
		n := 0
		for _, dir := range directions {
			q := Position{p.Row + dir.Row, p.Col + dir.Col}
			l := s.g.At(q)
			if l == hole || s.visited[q.Row*s.g.cols+q.Col] {
				continue
			}
			next = append(next, q)
			letters[n] = l
			n++
		}
		s.neighbors[depth] = next

		if n > 0 {
			results := s.d.ContainsFurther(string(s.word), string(letters[:n]), s.results[depth][:0])
			s.results[depth] = results
			for i, q := range next {
				s.visit(q, results[i])
			}
		}
	}

	s.word = s.word[:len(s.word)-1]
	s.path = s.path[:len(s.path)-1]
	s.visited[p.Row*s.g.cols+p.Col] = false
}

// SolveAll solves every grid against d using up to workers goroutines, or
// GOMAXPROCS when workers is not positive. Each goroutine queries through
// its own session. It stops early when ctx is cancelled.
func SolveAll(ctx context.Context, d dictionary.Dictionary, grids []*Grid, workers int) ([]Solution, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	solutions := make([]Solution, len(grids))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, g := range grids {
		eg.Go(func() error {
			sol, err := solve(ctx, d, g)
			if err != nil {
				return err
			}
			solutions[i] = sol

			log.Debug().
				Int("grid", i).
				Int("words", len(sol)).
				Int("paths", sol.NumPaths()).
				Msg("grid solved")
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return solutions, nil
}
