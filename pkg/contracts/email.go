package contracts

// DefaultEmailChannel 이메일 발송 작업을 전달하는 Redis 채널
const DefaultEmailChannel = "notification:email"

// EmailKind 이메일 종류
type EmailKind string

const (
	EmailKindRegistration  EmailKind = "registration"
	EmailKindWelcome       EmailKind = "welcome"
	EmailKindPasswordReset EmailKind = "password_reset"
)

// EmailJob 알림 서비스로 전달되는 이메일 발송 작업
type EmailJob struct {
	Kind      EmailKind `json:"kind" validate:"required,oneof=registration welcome password_reset"`
	Email     string    `json:"email" validate:"required,email"`
	FirstName string    `json:"first_name"`
	Link      string    `json:"link,omitempty"`
}

// RegistrationEmailRequest POST /email/send-registration
type RegistrationEmailRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
	Link      string `json:"link" validate:"required,url"`
}

// WelcomeEmailRequest POST /email/send-welcome
type WelcomeEmailRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
}

// PasswordResetEmailRequest POST /email/send-password-reset
type PasswordResetEmailRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
	Link      string `json:"link" validate:"required,url"`
}
