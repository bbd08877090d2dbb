package credentials

// Credential is one login record joined to its role. Read-only from
// the auth layer's perspective.
type Credential struct {
	UserID       string
	Username     string
	PasswordHash string
	RoleName     string
}
