package types

// ErrorResponse is the uniform error body: {"error": <message>}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for operations that report success without a
// record, e.g. deletes.
type MessageResponse struct {
	Message string `json:"message"`
}
