package dto

// ValidationViolation describes a single failed input constraint.
type ValidationViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination is the page summary attached to list responses.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Response is the common API envelope.
type Response struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message,omitempty"`
	Count      *int64                `json:"count,omitempty"`
	Data       any                   `json:"data,omitempty"`
	Pagination *Pagination           `json:"pagination,omitempty"`
	Errors     []ValidationViolation `json:"errors,omitempty"`
	Path       string                `json:"path,omitempty"`
}

// OK builds a success envelope with an optional message.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope. Raw database error text must never be
// passed here; callers log the detail and send a generic message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
