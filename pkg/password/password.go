package password

import "golang.org/x/crypto/bcrypt"

// Hash genera el hash bcrypt de una password en texto plano.
// bcrypt incluye el salt en el digest, por lo que dos llamadas con la misma
// entrada producen hashes distintos.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara una password en texto plano contra un hash bcrypt.
// La comparación en tiempo constante la garantiza bcrypt.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
