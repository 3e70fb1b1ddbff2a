package contracts

// Address 고객 주소 projection
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Customer 외부에 노출되는 고객 projection. 비밀번호 해시와 외부 ID는 포함하지 않습니다
type Customer struct {
	ID          uint    `json:"id"`
	FullName    string  `json:"full_name"`
	FirstName   string  `json:"first_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	Address     Address `json:"address"`
	Role        string  `json:"role"`
	Enabled     bool    `json:"enabled"`
	Service     string  `json:"service,omitempty"`
}
