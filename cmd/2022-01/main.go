// Calorie Counting
package main

import (
	"slices"
	"strconv"
	"strings"

	"xaoc/internal/runner"
)

func main() {
	runner.Main(runner.Puzzle[int, int]{
		Year:   2022,
		Day:    1,
		Part1:  func(in string) int { return top(in, 1) },
		Part2:  func(in string) int { return top(in, 3) },
		Sample: runner.Canned(0),
	})
}

// top sums the n largest elf totals
func top(input string, n int) int {
	totals := elves(input)
	slices.Sort(totals)
	slices.Reverse(totals)
	sum := 0
	for _, v := range totals[:min(n, len(totals))] {
		sum += v
	}
	return sum
}

func elves(input string) []int {
	var out []int
	for _, block := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		sum := 0
		for _, line := range strings.Fields(block) {
			v, err := strconv.Atoi(line)
			if err != nil {
				panic(err)
			}
			sum += v
		}
		out = append(out, sum)
	}
	return out
}
