package model

import (
	"time"
)

// CustomerModel 고객 데이터베이스 모델
type CustomerModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email              string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash       string `gorm:"size:100;not null" json:"-"`
	Enabled            bool   `gorm:"not null;default:false" json:"enabled"`
	ExternalIdentityID string `gorm:"size:64;index" json:"external_identity_id"`
	Role               string `gorm:"size:16;not null;default:'USER'" json:"role"`

	// 프로필
	FirstName   string `gorm:"size:50" json:"first_name"`
	LastName    string `gorm:"size:50" json:"last_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	HouseNumber string `gorm:"size:16" json:"house_number"`
	StreetName  string `gorm:"size:100" json:"street_name"`
	City        string `gorm:"size:50" json:"city"`
	State       string `gorm:"size:2" json:"state"`
	ZipCode     string `gorm:"size:10" json:"zip_code"`
	Service     string `gorm:"size:150" json:"service"`

	// 메타데이터 필드
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블 이름 지정
func (CustomerModel) TableName() string {
	return "customers"
}
