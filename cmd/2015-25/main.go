// Let It Snow: the weather machine code at a grid position
package main

import (
	"fmt"
	"strings"

	"xaoc/internal/runner"
)

func main() {
	runner.Main(runner.Puzzle[int, int]{
		Year:   2015,
		Day:    25,
		Part1:  part1,
		Part2:  func(string) int { return 0 },
		Sample: runner.Canned(0),
	})
}

const (
	first = 20151125
	mul   = 252533
	mod   = 33554393
)

func part1(input string) int {
	row, col, err := parse(input)
	if err != nil {
		panic(err)
	}
	// codes fill the grid along diagonals, starting at (1,1)
	d := row + col - 1
	n := d*(d-1)/2 + col
	return first * pow(mul, n-1) % mod
}

func parse(input string) (row, col int, err error) {
	i := strings.Index(input, "row ")
	if i < 0 {
		return 0, 0, fmt.Errorf("no grid position in %q", input)
	}
	if _, err := fmt.Sscanf(input[i:], "row %d, column %d", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("parse grid position: %w", err)
	}
	return row, col, nil
}

func pow(b, e int) int {
	r := 1
	b %= mod
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = r * b % mod
		}
		b = b * b % mod
	}
	return r
}
