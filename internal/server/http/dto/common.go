package dto

// RedirectResponse accompanies 303 responses.
type RedirectResponse struct {
	Notice   string `json:"notice,omitempty"`
	Redirect string `json:"redirect"`
}

// MessageResponse is a plain informational page.
type MessageResponse struct {
	Notice  string `json:"notice,omitempty"`
	Message string `json:"message"`
	Next    string `json:"next,omitempty"`
}

// ErrorResponse describes a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}
