package models

// ContactSubmission is one message sent through the contact form
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResult is returned to the submitter once the message is relayed
type ContactResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
