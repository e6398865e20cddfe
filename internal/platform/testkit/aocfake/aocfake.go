// Package aocfake runs an in-process stand-in for the puzzle server
// It serves inputs and answer pages the way adventofcode.com does and records what it saw
package aocfake

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Canned answer paragraphs as the real server words them
const (
	Correct         = "That's the right answer! You are one gold star closer to saving Christmas."
	Wrong           = "That's not the right answer; your answer is too low. Please wait one minute before trying again."
	TooSoon         = "You gave an answer too recently; you have to wait after submitting an answer before trying again. You have 38s left to wait."
	AlreadyAnswered = "You don't seem to be solving the right level. Did you already complete it?"
	LoggedOut       = "To play, please identify yourself via one of these services:"
)

// Submission is one POST the server received
type Submission struct {
	Year, Day int
	Level     string
	Answer    string
	Form      string
}

type key struct{ year, day int }

// Server is a fake puzzle server bound to one session token
type Server struct {
	*httptest.Server

	token string

	mu          sync.Mutex
	inputs      map[key]string
	reply       string
	status      int
	submissions []Submission
	userAgents  []string
	cookies     []string

	requests atomic.Int64
}

// New starts a fake server that accepts token as the session cookie; it closes with the test
func New(t testing.TB, token string) *Server {
	t.Helper()
	s := &Server{
		token:  token,
		inputs: map[key]string{},
		reply:  Correct,
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Get("/{year}/day/{day}/input", s.handleInput)
	r.Post("/{year}/day/{day}/answer", s.handleAnswer)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SetInput registers the puzzle input served for (year, day)
func (s *Server) SetInput(year, day int, text string) {
	s.mu.Lock()
	s.inputs[key{year, day}] = text
	s.mu.Unlock()
}

// Reply sets the paragraph returned for subsequent answer posts
func (s *Server) Reply(paragraph string) {
	s.mu.Lock()
	s.reply = paragraph
	s.mu.Unlock()
}

// FailWith makes every request answer with status until reset with 0
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Requests returns how many requests reached the server
func (s *Server) Requests() int { return int(s.requests.Load()) }

// Submissions returns the answer posts seen so far
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Submission(nil), s.submissions...)
}

// UserAgents returns the User-Agent header of every request
func (s *Server) UserAgents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.userAgents...)
}

// Cookies returns the raw Cookie header of every request
func (s *Server) Cookies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cookies...)
}

// Page wraps a paragraph in the page chrome the answer endpoint returns
// The paragraph is inserted verbatim
func Page(paragraph string) string {
	return `<!DOCTYPE html>
<html lang="en-us">
<head><title>Day - Advent of Code</title></head>
<body>
<header><h1 class="title-global"><a href="/">Advent of Code</a></h1></header>
<main>
<article><p>` + paragraph + ` <a href="/">[Return to Day]</a></p></article>
</main>
</body>
</html>
`
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.mu.Lock()
		s.userAgents = append(s.userAgents, r.UserAgent())
		s.cookies = append(s.cookies, r.Header.Get("Cookie"))
		status := s.status
		s.mu.Unlock()
		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authed(r *http.Request) bool {
	c, err := r.Cookie("session")
	return err == nil && c.Value == s.token
}

func puzzleOf(r *http.Request) (int, int, bool) {
	y, err1 := strconv.Atoi(chi.URLParam(r, "year"))
	d, err2 := strconv.Atoi(chi.URLParam(r, "day"))
	return y, d, err1 == nil && err2 == nil
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	year, day, ok := puzzleOf(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !s.authed(r) {
		http.Error(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	text, found := s.inputs[key{year, day}]
	s.mu.Unlock()
	if !found {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprint(w, text)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	year, day, ok := puzzleOf(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	if !s.authed(r) {
		_, _ = fmt.Fprint(w, Page(LoggedOut))
		return
	}
	s.mu.Lock()
	s.submissions = append(s.submissions, Submission{
		Year:   year,
		Day:    day,
		Level:  r.PostForm.Get("level"),
		Answer: r.PostForm.Get("answer"),
		Form:   r.PostForm.Encode(),
	})
	reply := s.reply
	s.mu.Unlock()
	_, _ = fmt.Fprint(w, Page(reply))
}
