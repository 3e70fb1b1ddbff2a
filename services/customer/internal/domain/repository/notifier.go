package repository

// Notifier 이메일 발송 요청. 호출자는 결과를 기다리지 않으며 실패는 로그로만 남습니다
type Notifier interface {
	SendRegistrationEmail(email, firstName, link string)
	SendWelcomeEmail(email, firstName string)
	SendPasswordResetEmail(email, firstName, link string)
}
