package entity

// User representa un usuario del sistema con credenciales de acceso.
// Login es único a nivel de base de datos (constraint UNIQUE).
type User struct {
	ID           int64
	Name         string
	Login        string
	PasswordHash string // hash bcrypt, nunca se serializa hacia afuera
}
