package model

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(identity Identity) (string, error)
	ParseAccessToken(token string) (Identity, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
