// Trebuchet?! calibration values
package main

import (
	"strings"

	"xaoc/internal/runner"
)

func main() {
	runner.Main(runner.Puzzle[int, int]{
		Year:   2023,
		Day:    1,
		Part1:  func(in string) int { return calibrate(in, false) },
		Part2:  func(in string) int { return calibrate(in, true) },
		Sample: runner.PerPart(runner.Canned(0), runner.Canned(1)),
	})
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func calibrate(input string, spelled bool) int {
	sum := 0
	for _, line := range strings.Split(input, "\n") {
		var digits []int
		for i := range line {
			if d, ok := digitAt(line[i:], spelled); ok {
				digits = append(digits, d)
			}
		}
		if len(digits) > 0 {
			sum += digits[0]*10 + digits[len(digits)-1]
		}
	}
	return sum
}

// digitAt reads a digit at the start of s; spelled words may overlap ("oneight")
func digitAt(s string, spelled bool) (int, bool) {
	if c := s[0]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for i, w := range words {
			if strings.HasPrefix(s, w) {
				return i + 1, true
			}
		}
	}
	return 0, false
}
