package dto

import (
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/constants"
)

// RegisterParams 회원가입 매개변수
type RegisterParams struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	HouseNumber string
	StreetName  string
	City        string
	State       string
	ZipCode     string
	Service     string
}

// Profile 도메인 입력값으로 변환
func (p RegisterParams) Profile() entity.Profile {
	return entity.Profile{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Password:    p.Password,
		PhoneNumber: p.PhoneNumber,
		HouseNumber: p.HouseNumber,
		StreetName:  p.StreetName,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		Service:     p.Service,
	}
}

// RegistrationResult 회원가입 결과
type RegistrationResult struct {
	Status   constants.Status
	Message  string
	Token    string
	Customer *contracts.Customer
}

// StatusResult 재발송, 이메일 인증, 토큰 상태 조회 결과
type StatusResult struct {
	Status  constants.Status
	Message string
}
