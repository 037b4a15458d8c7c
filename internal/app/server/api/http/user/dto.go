package user

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Login    string `json:"login" doc:"Login name" minLength:"3" maxLength:"32"`
	Email    string `json:"email,omitempty" doc:"Contact email for order notifications"`
	Password string `json:"password" doc:"Password" minLength:"8"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Login    string `json:"login" doc:"Login name" minLength:"3" maxLength:"32"`
	Password string `json:"password" doc:"Password" minLength:"1"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
