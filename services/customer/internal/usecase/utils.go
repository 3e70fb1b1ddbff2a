package usecase

import (
	"regexp"
	"unicode/utf8"

	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/constants"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateEmail 이메일 형식 검증
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, constants.MsgInvalidEmail, nil)
	}
	return nil
}

// ValidatePassword 비밀번호 길이 검증. 최소 길이는 문자 수, 최대 길이는 bcrypt 입력 한도인 바이트 수로 셉니다
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < constants.MinPasswordLength {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, constants.MsgPasswordTooShort, nil)
	}
	if len(password) > constants.MaxPasswordBytes {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, constants.MsgPasswordTooLong, nil)
	}
	return nil
}

// HashPassword bcrypt 해시 생성
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
