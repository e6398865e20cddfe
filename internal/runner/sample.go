package runner

import (
	"xaoc/internal/core/samples"
	perr "xaoc/internal/platform/errors"
	dom "xaoc/internal/services/puzzle/domain"
)

type sampleKind uint8

const (
	sampleNone sampleKind = iota
	sampleLiteral
	sampleCanned
	samplePerPart
)

// Sample declares the input used by --sample
// The zero value means the solver has no sample
type Sample struct {
	kind  sampleKind
	text  string
	index int
	parts [2]*Sample
}

// None declares that the solver has no sample
func None() Sample { return Sample{} }

// Literal uses text verbatim
func Literal(text string) Sample { return Sample{kind: sampleLiteral, text: text} }

// Canned picks entry index of the shipped sample table for the solver's puzzle
func Canned(index int) Sample { return Sample{kind: sampleCanned, index: index} }

// PerPart uses a different sample for each part
func PerPart(part1, part2 Sample) Sample {
	return Sample{kind: samplePerPart, parts: [2]*Sample{&part1, &part2}}
}

// resolve returns the sample text for part of p
func (s Sample) resolve(p dom.Puzzle, part dom.Part) (string, error) {
	switch s.kind {
	case sampleLiteral:
		return s.text, nil
	case sampleCanned:
		return samples.Lookup(p.Year, p.Day, s.index)
	case samplePerPart:
		sub := s.parts[part-1]
		if sub == nil || sub.kind == samplePerPart {
			return "", perr.NoSamplef("%s has no sample for part %s", p, part)
		}
		return sub.resolve(p, part)
	default:
		return "", perr.NoSamplef("%s has no sample input", p)
	}
}
