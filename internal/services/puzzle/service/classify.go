package service

import (
	"strings"

	perr "xaoc/internal/platform/errors"
	dom "xaoc/internal/services/puzzle/domain"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// reply markers, matched in order
var markers = []struct {
	text    string
	outcome dom.Outcome
}{
	{"That's the right answer", dom.OutcomeCorrect},
	{"not the right answer", dom.OutcomeWrong},
	{"You gave an answer too recently", dom.OutcomeTooSoon},
	{"You don't seem to be solving the right level", dom.OutcomeAlreadyAnswered},
}

const loggedOut = "To play, please identify yourself"

// Classify maps an answer page to a Submission
// A page asking the user to log in is an Auth error
func Classify(body string) (dom.Submission, error) {
	msg := articleText(body)

	if strings.Contains(body, loggedOut) || strings.Contains(msg, loggedOut) {
		return dom.Submission{}, perr.Authf("puzzle server asked to log in; the session token is invalid or expired")
	}
	for _, m := range markers {
		if strings.Contains(body, m.text) || strings.Contains(msg, m.text) {
			return dom.Submission{Outcome: m.outcome, Message: msg}, nil
		}
	}
	return dom.Submission{Outcome: dom.OutcomeUnknown, Message: msg}, nil
}

// articleText returns the text of the first paragraph of the page's <article>
// Bracketed navigation links such as [Return to Day 1] are dropped
// Pages without an article fall back to all visible text
func articleText(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return collapse(body)
	}
	if art := find(doc, atom.Article); art != nil {
		if p := find(art, atom.P); p != nil {
			return collapse(text(p))
		}
		return collapse(text(art))
	}
	return collapse(text(doc))
}

// find returns the first element with tag a in depth first order
func find(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, a); f != nil {
			return f
		}
	}
	return nil
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Head:
				return
			case atom.A:
				if t := strings.TrimSpace(plainText(n)); strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// plainText concatenates every text node under n
func plainText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(plainText(c))
	}
	return b.String()
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }
