package server

// HealthResponse is the GET / payload.
type HealthResponse struct {
	Message string `json:"message"`
}

// AnalyzeResponse is the successful POST /analyze payload.
type AnalyzeResponse struct {
	Status        string `json:"status"`
	Query         string `json:"query"`
	Analysis      string `json:"analysis"`
	FileProcessed string `json:"file_processed"`
}

// ErrorResponse carries the human-readable failure detail for non-2xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
