package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// RemoteErrorKind 외부 서비스 호출 실패 유형
type RemoteErrorKind string

const (
	// RemoteUnavailable 연결 실패, 타임아웃, 5xx 응답
	RemoteUnavailable RemoteErrorKind = "unavailable"
	// RemoteRejected 외부 서비스가 요청을 거부함 (4xx 응답)
	RemoteRejected RemoteErrorKind = "rejected"
)

// RemoteError 외부 서비스 호출 에러
type RemoteError struct {
	Service    string
	Kind       RemoteErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Service, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// Code 에러 코드 반환
func (e *RemoteError) Code() string {
	if e.Kind == RemoteRejected {
		if e.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		if e.StatusCode == http.StatusConflict {
			return ErrConflict
		}
		return ErrRejected
	}
	return ErrUnavailable
}

// NewUnavailableError 전송 계층 실패를 RemoteError로 변환합니다
func NewUnavailableError(service string, cause error) *RemoteError {
	return &RemoteError{
		Service: service,
		Kind:    RemoteUnavailable,
		Message: "service unreachable",
		Cause:   cause,
	}
}

// NewRejectedError 외부 서비스의 거부 응답을 RemoteError로 변환합니다
func NewRejectedError(service string, statusCode int, message string) *RemoteError {
	return &RemoteError{
		Service:    service,
		Kind:       RemoteRejected,
		StatusCode: statusCode,
		Message:    message,
	}
}

// FromHTTPResponse HTTP 응답 상태 코드로 RemoteError를 만듭니다. 2xx 응답은 nil을 반환합니다
func FromHTTPResponse(service string, statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	message := strings.TrimSpace(string(body))
	if len(message) > 256 {
		message = message[:256]
	}

	if statusCode >= 500 {
		return &RemoteError{
			Service:    service,
			Kind:       RemoteUnavailable,
			StatusCode: statusCode,
			Message:    message,
		}
	}

	return NewRejectedError(service, statusCode, message)
}

// FromTransportError http.Client.Do 실패를 RemoteError로 변환합니다.
// 타임아웃과 컨텍스트 만료도 전송 실패로 취급합니다
func FromTransportError(service string, err error) error {
	if err == nil {
		return nil
	}
	return NewUnavailableError(service, err)
}

// IsUnavailable 외부 서비스 연결 실패 여부
func IsUnavailable(err error) bool {
	var remoteErr *RemoteError
	return As(err, &remoteErr) && remoteErr.Kind == RemoteUnavailable
}

// IsRejected 외부 서비스 거부 여부
func IsRejected(err error) bool {
	var remoteErr *RemoteError
	return As(err, &remoteErr) && remoteErr.Kind == RemoteRejected
}
