package token

import "time"

// Maker is the contract for anything that can create and verify tokens.
// Keeps the rest of the app independent of the PASETO implementation.
type Maker interface {
	CreateToken(email string, role string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
