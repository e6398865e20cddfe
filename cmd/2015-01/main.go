// Not Quite Lisp: follow parentheses up and down floors
// Year and day come from this package's path
package main

import "xaoc/internal/runner"

func main() {
	runner.Main(runner.Puzzle[int, int]{
		Part1:  part1,
		Part2:  part2,
		Sample: runner.Canned(10),
	})
}

func part1(input string) int {
	floor := 0
	for _, c := range input {
		floor += step(c)
	}
	return floor
}

// part2 returns the 1-based position of the first move into the basement
func part2(input string) int {
	floor := 0
	for i, c := range input {
		floor += step(c)
		if floor < 0 {
			return i + 1
		}
	}
	return 0
}

func step(c rune) int {
	switch c {
	case '(':
		return 1
	case ')':
		return -1
	}
	return 0
}
