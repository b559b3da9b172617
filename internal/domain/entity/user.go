package entity

import "github.com/jhoicas/Tienda-api/internal/domain/credential"

// Roles derivados de las filas asociadas al usuario.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User representa una cuenta con credenciales. Puede tener un Buyer y/o un Seller asociado.
type User struct {
	ID           int64
	Email        string
	Salt         string // hex, se genera una sola vez
	PasswordHash string // bcrypt(password + salt)
	IsActive     bool
}

// NewUser construye un usuario activo con la contraseña ya hasheada. No persiste.
func NewUser(email, password string) (*User, error) {
	u := &User{Email: email, IsActive: true}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword genera la sal si aún no existe y guarda el hash salado.
func (u *User) SetPassword(password string) error {
	if u.Salt == "" {
		salt, err := credential.NewSalt()
		if err != nil {
			return err
		}
		u.Salt = salt
	}
	hash, err := credential.Hash(password, u.Salt)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword indica si candidate coincide con la contraseña guardada.
func (u *User) CheckPassword(candidate string) bool {
	return credential.Check(u.PasswordHash, u.Salt, candidate)
}
