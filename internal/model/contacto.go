package model

import "time"

// ContactRequest is a submission from the public contact form. Requests
// are append-only: never updated, never deleted.
type ContactRequest struct {
	ID        int       `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Subject   string    `json:"asunto"`
	Message   string    `json:"mensaje"`
	CreatedAt time.Time `json:"fecha"`
}
