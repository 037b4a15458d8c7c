package health

// Input represents the input for health check endpoints
type Input struct{}

// Output represents the output for the liveness endpoint
type Output struct {
	Body Response
}

// Response is the liveness body. It is static: liveness must not flap
// when a dependency does.
type Response struct {
	Status string `json:"status" example:"healthy" doc:"Health status of the service"`
}

// ReadyOutput represents the output for the readiness endpoint
type ReadyOutput struct {
	Status int
	Body   ReadyResponse
}

// ReadyResponse reports per-dependency readiness
type ReadyResponse struct {
	Status   string `json:"status" example:"healthy" doc:"Overall readiness"`
	Database string `json:"database" example:"healthy" doc:"PostgreSQL connectivity"`
	Cache    string `json:"cache" example:"healthy" doc:"Redis connectivity"`
}
