package db_models

// Role is the closed set of account roles. The legacy service carried
// these as free strings; every boundary check now goes through the two
// constants below.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleBusiness
}

type Account struct {
	BaseModel
	Email         string `gorm:"unique"`
	Name          string
	PasswordHash  string
	Role          Role   `gorm:"type:varchar(20);index"`
	WalletAddress string `gorm:"size:100"`
}
