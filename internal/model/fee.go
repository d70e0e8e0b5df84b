package model

// FeeType is how a platform fee is computed.
type FeeType string

const (
	FeePercentage FeeType = "percentage"
	FeeFixed      FeeType = "fixed"
	FeeHybrid     FeeType = "hybrid"
)

// Fee is a platform fee structure charged on transactions. Which entity it
// targets is decided by ApplicationType (global, cpo, station, city,
// connector).
type Fee struct {
	Ordered

	ID               string    `gorm:"primaryKey;size:32" json:"id"`
	Name             string    `gorm:"size:128;not null" json:"name"`
	Type             FeeType   `gorm:"size:16;index" json:"type"`
	Percentage       *float64  `json:"percentage,omitempty"`
	FixedAmount      *float64  `json:"fixedAmount,omitempty"`
	MinimumFee       *float64  `json:"minimumFee,omitempty"`
	MaximumFee       *float64  `json:"maximumFee,omitempty"`
	ApplicationType  string    `gorm:"size:16;index" json:"applicationType"`
	TargetID         string    `gorm:"size:32" json:"targetId,omitempty"`
	TargetName       string    `gorm:"size:128" json:"targetName,omitempty"`
	Status           Lifecycle `gorm:"size:16;index" json:"status"`
	EffectiveDate    string    `gorm:"size:32" json:"effectiveDate"`
	ExpiryDate       string    `gorm:"size:32" json:"expiryDate,omitempty"`
	CreatedBy        string    `gorm:"size:64" json:"createdBy"`
	CreatedDate      string    `gorm:"size:32" json:"createdDate"`
	LastModified     string    `gorm:"size:32" json:"lastModified"`
	TotalRevenue     float64   `json:"totalRevenue"`
	TransactionCount int       `json:"transactionCount"`
	Description      string    `gorm:"size:512" json:"description,omitempty"`
}
