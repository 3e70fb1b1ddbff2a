package constants

// Status 호출자에게 반환하는 처리 결과
type Status string

const (
	StatusSuccess          Status = "SUCCESS"
	StatusFailed           Status = "FAILED"
	StatusAlreadyConfirmed Status = "ALREADY_CONFIRMED"
	StatusAlreadyVerified  Status = "ALREADY_VERIFIED"
	StatusExpired          Status = "EXPIRED"
)

// 사용자에게 노출되는 메시지
const (
	MsgRegistrationSuccess = "Registration successful. Please check your email for verification."
	MsgRegistrationFailed  = "Registration failed"
	MsgVerificationSent    = "Verification email sent successfully"
	MsgAlreadyVerified     = "Account is already verified"
	MsgAlreadyConfirmed    = "Email is already confirmed"
	MsgTokenExpired        = "Verification token has expired"
	MsgInvalidToken        = "Invalid or expired token"
	MsgEmailConfirmed      = "Email confirmed successfully"
	MsgInvalidEmail        = "Invalid email format"
	MsgEmailExists         = "User with this email already exists"
	MsgPasswordTooShort    = "Password must be at least 8 characters long"
	MsgPasswordTooLong     = "Password must be at most 72 bytes long"
	MsgUserNotFound        = "User not found"
)

// MinPasswordLength 최소 비밀번호 길이
const MinPasswordLength = 8

// MaxPasswordBytes bcrypt가 받아들이는 최대 입력 길이
const MaxPasswordBytes = 72

// ConfirmPath 이메일 인증 링크 경로
const ConfirmPath = "/auth/customer/confirm"
