package entity

import (
	"strings"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// Role 고객 권한
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Customer 고객 도메인 엔티티
type Customer struct {
	ID                 uint
	Email              string // 소문자로 정규화된 이메일 (유일)
	PasswordHash       string
	Enabled            bool
	ExternalIdentityID string // IdP 사용자 ID
	Role               Role

	FirstName   string
	LastName    string
	PhoneNumber string
	HouseNumber string
	StreetName  string
	City        string
	State       string
	ZipCode     string
	Service     string // 서비스 요금제

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile 회원가입 입력값
type Profile struct {
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

// NormalizeEmail 이메일 비교와 저장에 쓰는 정규화 형식
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewCustomer 비활성 상태의 새 고객 생성
func NewCustomer(profile Profile, passwordHash, externalIdentityID string) *Customer {
	return &Customer{
		Email:              NormalizeEmail(profile.Email),
		PasswordHash:       passwordHash,
		Enabled:            false,
		ExternalIdentityID: externalIdentityID,
		Role:               RoleUser,
		FirstName:          strings.TrimSpace(profile.FirstName),
		LastName:           strings.TrimSpace(profile.LastName),
		PhoneNumber:        strings.TrimSpace(profile.PhoneNumber),
		HouseNumber:        strings.TrimSpace(profile.HouseNumber),
		StreetName:         strings.TrimSpace(profile.StreetName),
		City:               strings.TrimSpace(profile.City),
		State:              strings.TrimSpace(profile.State),
		ZipCode:            strings.TrimSpace(profile.ZipCode),
		Service:            strings.TrimSpace(profile.Service),
	}
}

// FullName 이름과 성을 합친 표시 이름
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ToProjection 외부 노출용 projection. 비밀번호 해시와 IdP ID는 제외합니다
func (c *Customer) ToProjection() *contracts.Customer {
	return &contracts.Customer{
		ID:          c.ID,
		FullName:    c.FullName(),
		FirstName:   c.FirstName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address: contracts.Address{
			Line1:   strings.TrimSpace(c.HouseNumber + " " + c.StreetName),
			City:    c.City,
			State:   c.State,
			ZipCode: c.ZipCode,
		},
		Role:    string(c.Role),
		Enabled: c.Enabled,
		Service: c.Service,
	}
}
