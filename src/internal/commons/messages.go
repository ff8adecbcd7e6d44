package commons

// Response messages the HTTP layer maps to status codes.
const (
	MessageValidationFailed  = "validation failed"
	MessageClientNotFound    = "Client not found"
	MessageAccountNotFound   = "Account not found"
	MessageDuplicateClient   = "Client already registered"
	MessageTransactionDenied = "transaction rejected"
)
