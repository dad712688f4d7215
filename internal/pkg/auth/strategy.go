package auth

import "time"

// Identity is the authenticated principal carried inside a token.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
