package dpllsat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadSS parses the ".ss" puzzle format: nine lines of nine characters,
// digits 1-9 for filled cells and '%' for empty ones.
func ReadSS(r io.Reader) (Grid, error) {
	var g Grid
	s := bufio.NewScanner(r)
	row := 0
	for s.Scan() && row < 9 {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 9 {
			return g, fmt.Errorf("dpllsat: .ss row %d has %d characters, want 9", row, len(line))
		}
		for col := 0; col < 9; col++ {
			switch ch := line[col]; {
			case ch == '%':
				g[row][col] = 0
			case ch >= '1' && ch <= '9':
				g[row][col] = int(ch - '0')
			default:
				return g, fmt.Errorf("dpllsat: .ss row %d has invalid character %q", row, ch)
			}
		}
		row++
	}
	if err := s.Err(); err != nil {
		return g, err
	}
	if row != 9 {
		return g, fmt.Errorf("dpllsat: .ss input has %d rows, want 9", row)
	}
	return g, nil
}

// WriteSS writes g in the ".ss" puzzle format.
func WriteSS(w io.Writer, g Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				bw.WriteByte('%')
			} else {
				fmt.Fprintf(bw, "%d", g[r][c])
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
