package entity

import "time"

// ContactMessage is an accepted contact-form submission. Messages are
// append-only: once stored they are never mutated or deleted.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
