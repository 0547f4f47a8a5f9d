package dto

// ContactRequest is the contact-form payload submitted by a visitor.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a submission. ID is null and Saved is false
// when the message could not be persisted; the submission still succeeds.
type ContactResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	ID      *string `json:"id"`
	Saved   bool    `json:"saved"`
}
