package status

// Input represents the input for the root status endpoint
type Input struct{}

// Output represents the output for the root status endpoint
type Output struct {
	Body Response
}

// Response is the fixed banner returned on the root route
type Response struct {
	Message string `json:"message" example:"Order Processor API is running!" doc:"Service banner"`
}
