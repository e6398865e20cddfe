package service

import (
	"testing"

	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/testkit/aocfake"
	dom "xaoc/internal/services/puzzle/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		body    string
		outcome dom.Outcome
		message string
	}{
		{
			"correct page",
			aocfake.Page(aocfake.Correct),
			dom.OutcomeCorrect,
			aocfake.Correct,
		},
		{
			"entity encoded apostrophe",
			aocfake.Page("That&#39;s the right answer! Nice."),
			dom.OutcomeCorrect,
			"That's the right answer! Nice.",
		},
		{
			"wrong wins over right",
			aocfake.Page(aocfake.Wrong),
			dom.OutcomeWrong,
			aocfake.Wrong,
		},
		{
			"too soon with markup",
			aocfake.Page("You gave an answer too recently; you have to wait. <span>You have 4m 2s left to wait.</span>"),
			dom.OutcomeTooSoon,
			"You gave an answer too recently; you have to wait. You have 4m 2s left to wait.",
		},
		{
			"already answered",
			aocfake.Page(aocfake.AlreadyAnswered),
			dom.OutcomeAlreadyAnswered,
			aocfake.AlreadyAnswered,
		},
		{
			"bracketed link dropped",
			`<article><p>That's the right answer! You are one gold star closer. <a href="/2015/day/1#part2">[Continue to Part Two]</a></p></article>`,
			dom.OutcomeCorrect,
			"That's the right answer! You are one gold star closer.",
		},
		{
			"plain link kept",
			`<article><p>That's not the right answer. <a href="/2015/day/1/input">Get your puzzle input</a> again.</p></article>`,
			dom.OutcomeWrong,
			"That's not the right answer. Get your puzzle input again.",
		},
		{
			"first paragraph only",
			"<html><body><article><p>Odd reply.</p><p>Second.</p></article></body></html>",
			dom.OutcomeUnknown,
			"Odd reply.",
		},
		{
			"no article",
			"<html><head><title>x</title></head><body>  plain\n text </body></html>",
			dom.OutcomeUnknown,
			"plain text",
		},
		{
			"not html",
			"That's the right answer",
			dom.OutcomeCorrect,
			"That's the right answer",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := Classify(tc.body)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if sub.Outcome != tc.outcome || sub.Message != tc.message {
				t.Fatalf("got %v %q, want %v %q", sub.Outcome, sub.Message, tc.outcome, tc.message)
			}
		})
	}
}

func TestClassifyLoggedOut(t *testing.T) {
	t.Parallel()
	_, err := Classify(aocfake.Page(aocfake.LoggedOut))
	if !perr.IsCode(err, perr.ErrorCodeAuth) {
		t.Fatalf("err = %v", err)
	}
}
