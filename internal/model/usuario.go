package model

// User represents a registered storefront customer.
//
// The password is stored and serialized in plaintext because the public
// contract echoes it back verbatim on registration and compares it
// literally on login. This is a documented gap of the API, not a
// feature to extend.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Phone    string `json:"telefono"`
	Address  string `json:"direccion"`
	Password string `json:"password"`
}
