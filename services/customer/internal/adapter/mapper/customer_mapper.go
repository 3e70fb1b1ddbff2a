package mapper

import (
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/db/model"
)

// CustomerToModel 고객 엔티티를 DB 모델로 변환
func CustomerToModel(c *entity.Customer) *model.CustomerModel {
	if c == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:                 c.ID,
		Email:              c.Email,
		PasswordHash:       c.PasswordHash,
		Enabled:            c.Enabled,
		ExternalIdentityID: c.ExternalIdentityID,
		Role:               string(c.Role),
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		PhoneNumber:        c.PhoneNumber,
		HouseNumber:        c.HouseNumber,
		StreetName:         c.StreetName,
		City:               c.City,
		State:              c.State,
		ZipCode:            c.ZipCode,
		Service:            c.Service,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// CustomerFromModel DB 모델을 고객 엔티티로 변환
func CustomerFromModel(m *model.CustomerModel) *entity.Customer {
	if m == nil {
		return nil
	}

	return &entity.Customer{
		ID:                 m.ID,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Enabled:            m.Enabled,
		ExternalIdentityID: m.ExternalIdentityID,
		Role:               entity.Role(m.Role),
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		PhoneNumber:        m.PhoneNumber,
		HouseNumber:        m.HouseNumber,
		StreetName:         m.StreetName,
		City:               m.City,
		State:              m.State,
		ZipCode:            m.ZipCode,
		Service:            m.Service,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
