package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacía
// conserva el hash actual.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (el hash nunca se serializa).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
