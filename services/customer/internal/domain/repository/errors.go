package repository

import "errors"

// ErrDuplicateEmail 이메일 유일성 위반
var ErrDuplicateEmail = errors.New("customer email already exists")
