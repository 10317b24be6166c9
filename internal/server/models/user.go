package models

import "time"

// User is a registered account. Email is the unique natural key used for
// login. PasswordHash is a salted bcrypt digest; the raw password is never
// stored and the hash never leaves the server process.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
