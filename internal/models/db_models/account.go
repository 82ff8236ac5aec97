package db_models

type Role string

const (
	RoleGuest   Role = "guest"
	RoleHost    Role = "host"
	RoleAdmin   Role = "admin"
	RoleSupport Role = "support"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	Phone        string
	PasswordHash string
	Role         Role `gorm:"size:16;index"`

	// Cumulative settled earnings for host accounts, minor units.
	// Incremented only by the payment ledger's release path.
	EarningsMinor int64

	Cars     []Car     `gorm:"foreignKey:HostID"`
	Bookings []Booking `gorm:"foreignKey:GuestID"`
}
