package dto

// UpvoteCheckResponse answers the upvote-check endpoint.
type UpvoteCheckResponse struct {
	HasUpvoted bool `json:"hasUpvoted"`
}

// UpvoteResponse answers the upvote endpoint. Recorded is false when this
// client had already upvoted and the count was left untouched.
type UpvoteResponse struct {
	UpvoteCount int  `json:"upvoteCount"`
	Recorded    bool `json:"recorded"`
}

// UpvoteCountResponse answers the read-only count endpoint.
type UpvoteCountResponse struct {
	UpvoteCount int `json:"upvoteCount"`
}

// HealthResponse answers the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
