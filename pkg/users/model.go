// pkg/users/model.go
package users

import (
	"crypto/sha256"
	"encoding/hex"
)

// User is the credential record stored per (tenant_id, email) pair.
// The digest never leaves the service: JSON marshalling skips it.
type User struct {
	TenantID       string `dynamodbav:"tenant_id" json:"tenant_id"`
	Email          string `dynamodbav:"email" json:"email"`
	Name           string `dynamodbav:"name" json:"name"`
	PasswordDigest string `dynamodbav:"password_digest" json:"-"`
	Phone          string `dynamodbav:"phone" json:"phone"`
	CreatedAt      string `dynamodbav:"created_at" json:"created_at"`
	Active         bool   `dynamodbav:"active" json:"active"`
}

// HashPassword returns the hex sha256 digest of a plaintext password.
//
// sha256 is a fast hash, not a credential hash: it is kept only because the
// stored records already use it and a change would invalidate every existing
// credential. A deployment free of that constraint should use a slow, salted
// scheme (bcrypt/argon2) instead.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
