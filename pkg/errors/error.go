package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string  // 에러 코드 반환
	Unwrap() error // 내부 에러 반환
}

// AppError는 기본 에러 구현체입니다
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message 내부 에러를 제외한 사용자 노출용 메시지를 반환합니다
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap은 기존 에러를 래핑합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 코드를 가진 에러인 경우 코드를 유지합니다
	if code := CodeOf(err); code != "" {
		return NewAppError(code, message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf는 에러 체인에서 첫 번째 에러 코드를 찾습니다. 없으면 빈 문자열을 반환합니다
func CodeOf(err error) string {
	var coded Error
	if As(err, &coded) {
		return coded.Code()
	}
	return ""
}

// HasCode는 에러 체인에 지정한 코드가 있는지 확인합니다
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
