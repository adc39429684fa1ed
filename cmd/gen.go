package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stanleychen/sgtpuzzles/internal/board"
	"github.com/stanleychen/sgtpuzzles/internal/generator"
)

var (
	numBoards  int
	paramsStr  string
	seed       int64
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Peg Solitaire boards",
		Long: `Generate one or more Peg Solitaire boards of a given shape and size.

Board parameters take the form WxHtype, e.g. "7x7cross", "9x9random".
Cross and Octagon boards use fixed layouts; Random boards are generated
from scratch and guaranteed solvable down to a single peg.

Examples:
  pegs gen
  pegs gen -p 5x5random -n 3
  pegs gen -p 9x9random --seed 42 -o boards.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numBoards, "number", "n", 1, "Number of boards to generate")
	genCmd.Flags().StringVarP(&paramsStr, "params", "p", board.DefaultParams().Encode(true), "Board parameters, e.g. 7x7cross or 9x9random")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible boards (0 = time-based)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., boards.html)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	params, err := board.DecodeParams(paramsStr, board.DefaultParams())
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	var boards []*board.Board
	outputHTML := outputFile != ""

	gen := generator.New(&generator.Options{Seed: seed})
	for i := 0; i < numBoards; i++ {
		b, _, err := gen.NewBoard(params)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputHTML {
			boards = append(boards, b)
		} else {
			fmt.Printf("Board #%d (%s):\n", i+1, params.Name())
			fmt.Println(b.Format())
			fmt.Println(b.String())
			fmt.Println()
		}
	}

	if outputHTML {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename = filename + ".html"
		}
		if err := generateHTML(filename, params, boards); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d board(s) in %s\n", numBoards, filename)
	}

	return nil
}

// generateHTML creates an HTML file with boards, one per page.
func generateHTML(filename string, params board.Params, boards []*board.Board) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	// Write HTML header
	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Peg Solitaire Boards</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        .pegs-grid {
            display: inline-block;
            margin: 20px auto;
        }
        .pegs-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .pegs-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            padding: 0;
        }
        .pegs-grid td.peg, .pegs-grid td.hole {
            border: 1px solid #333;
            background-color: #eee;
        }
        .pegs-grid td.peg::after {
            content: "●";
            color: #00c;
            font-size: 28px;
        }
        .pegs-grid td.hole::after {
            content: "○";
            color: #999;
            font-size: 20px;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	// Write each board on its own page
	for i, b := range boards {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>%s Board #%d</h1>
        %s
    </div>
`, params.Name(), i+1, boardToHTML(b))
		if err != nil {
			return err
		}
	}

	// Write HTML footer
	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}

// boardToHTML converts a board to an HTML table representation.
func boardToHTML(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"pegs-grid\"><table>")

	for y := 0; y < b.Height(); y++ {
		sb.WriteString("<tr>")
		for x := 0; x < b.Width(); x++ {
			cellClass := ""
			switch b.Get(x, y) {
			case board.Peg:
				cellClass = "peg"
			case board.Hole:
				cellClass = "hole"
			}
			sb.WriteString(fmt.Sprintf("<td class=\"%s\"></td>", cellClass))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
