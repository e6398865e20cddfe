package domain

import (
	"context"
	"net/url"
	"time"
)

// CredentialPort yields the session token
type CredentialPort interface {
	Load(ctx context.Context) (string, error)
}

// CachePort stores puzzle inputs
type CachePort interface {
	Get(year, day int) (string, bool, error)
	Put(year, day int, text string) error
}

// TransportPort talks to the puzzle server
type TransportPort interface {
	Get(ctx context.Context, path, session string) (string, error)
	PostForm(ctx context.Context, path, session string, fields url.Values) (string, error)
}

// InputPort fetches puzzle inputs
type InputPort interface {
	FetchInput(ctx context.Context, p Puzzle) (string, error)
}

// SubmitPort posts answers
type SubmitPort interface {
	Submit(ctx context.Context, p Puzzle, part Part, answer string) (Submission, error)
}

// ReleasePort answers release timing questions
type ReleasePort interface {
	Release(p Puzzle) (at time.Time, wait time.Duration)
}
