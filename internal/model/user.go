package model

// UserStatus is the account state of a driver.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

// MembershipTier is the driver's plan.
type MembershipTier string

const (
	TierBasic      MembershipTier = "basic"
	TierPremium    MembershipTier = "premium"
	TierEnterprise MembershipTier = "enterprise"
)

// User is a registered driver.
type User struct {
	Ordered

	ID             string         `gorm:"primaryKey;size:32" json:"id"`
	Name           string         `gorm:"size:128;not null" json:"name"`
	Email          string         `gorm:"size:256" json:"email"`
	Phone          string         `gorm:"size:32" json:"phone"`
	Location       string         `gorm:"size:128" json:"location"`
	Status         UserStatus     `gorm:"size:16;index" json:"status"`
	JoinDate       string         `gorm:"size:32" json:"joinDate"`
	LastActive     string         `gorm:"size:32" json:"lastActive"`
	TotalSessions  int            `json:"totalSessions"`
	TotalSpent     float64        `json:"totalSpent"`
	Rating         float64        `json:"rating"`
	VehicleModel   string         `gorm:"size:64" json:"vehicleModel,omitempty"`
	MembershipTier MembershipTier `gorm:"size:16;index" json:"membershipTier"`
	PaymentMethod  string         `gorm:"size:64" json:"paymentMethod"`
}
