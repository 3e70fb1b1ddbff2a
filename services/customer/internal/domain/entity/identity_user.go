package entity

// IdentityUser IdP에 등록된 사용자
type IdentityUser struct {
	ID            string
	Email         string
	Enabled       bool
	EmailVerified bool
}
