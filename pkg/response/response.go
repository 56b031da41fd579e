package response

// Result is the uniform envelope returned by every service operation.
// Success implies an empty ErrorMessage; failure implies nil Data.
type Result struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Data         any    `json:"data,omitempty"`
}

func Ok(data any) *Result {
	return &Result{Success: true, Data: data}
}

func Fail(message string) *Result {
	return &Result{Success: false, ErrorMessage: message}
}
