package token

import "time"

// Maker creates and verifies auth tokens. Keeping it behind an interface
// lets the middleware and handlers stay independent of the token format.
type Maker interface {
	CreateToken(username string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
