package domain

import "errors"

// Errores de dominio (sin dependencias externas). La ausencia de una
// entidad se representa como valor nil en los repositorios; estos errores
// cubren las condiciones realmente excepcionales y las de boundary.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrLoginAlreadyExists = errors.New("el login ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
)
