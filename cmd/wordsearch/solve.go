package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/milden6/wordsearch/solver"
)

var (
	solveWorkers int
	solveShow    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve GRID...",
	Short: "Find the dictionary words in grid files",
	Long: "Find the dictionary words in grid files. Each file holds one grid, a row\n" +
		"of letters per line, spaces for holes. Use - to read a grid from stdin.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDictionary(cfg)
		if err != nil {
			return err
		}

		grids := make([]*solver.Grid, len(args))
		for i, name := range args {
			if grids[i], err = readGrid(cmd.InOrStdin(), name); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			workers = solveWorkers
		}
		solutions, err := solver.SolveAll(cmd.Context(), d, grids, workers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, sol := range solutions {
			if len(args) > 1 {
				fmt.Fprintf(out, "== %s ==\n", args[i])
			}
			printSolution(out, grids[i], sol, solveShow)
		}
		return nil
	},
}

func readGrid(stdin io.Reader, name string) (*solver.Grid, error) {
	if name == "-" {
		return solver.ParseGrid(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return solver.ParseGrid(f)
}

func printSolution(w io.Writer, g *solver.Grid, sol solver.Solution, show bool) {
	words := sol.Words()
	for _, word := range words {
		paths := sol[word]
		fmt.Fprintf(w, "%s (%d)\n", word, len(paths))
		if show {
			fmt.Fprint(w, renderPath(g, paths[0]))
		}
	}
	fmt.Fprintf(w, "%d words, %d paths\n", len(words), sol.NumPaths())
}

var (
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#4589ff"))
	startStyle = pathStyle.Background(lipgloss.Color("#da1e28"))
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d8d8d"))
)

// renderPath draws g with the cells of path highlighted, the first one in
// its own color, and each cell's step number in the path beside it.
func renderPath(g *solver.Grid, path solver.Path) string {
	step := make(map[solver.Position]int, len(path))
	for i, p := range path {
		step[p] = i + 1
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, g.Cols())
		for c := range cells {
			p := solver.Position{Row: r, Col: c}
			letter := string(g.At(p))
			if g.At(p) == 0 {
				letter = " "
			}

			switch n, ok := step[p]; {
			case ok && n == 1:
				cells[c] = startStyle.Render(letter)
			case ok:
				cells[c] = pathStyle.Render(letter)
			default:
				cells[c] = cellStyle.Render(letter)
			}
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	solveCmd.Flags().IntVarP(&solveWorkers, "workers", "w", 0, "grids solved at once (default GOMAXPROCS)")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "draw one path of each word")
	rootCmd.AddCommand(solveCmd)
}
