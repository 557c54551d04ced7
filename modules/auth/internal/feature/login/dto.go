package login

type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
}

type LoginResponse struct {
	Kind       string `json:"tipo"`
	CustomerID *int64 `json:"clienteId,omitempty"`
}
