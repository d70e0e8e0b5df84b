package model

// CPOStatus is the integration state of a charge point operator.
type CPOStatus string

const (
	CPOConnected    CPOStatus = "connected"
	CPOError        CPOStatus = "error"
	CPOTesting      CPOStatus = "testing"
	CPODisconnected CPOStatus = "disconnected"
)

// CPO is a charge point operator integrated with the platform.
type CPO struct {
	Ordered

	ID                 string    `gorm:"primaryKey;size:32" json:"id"`
	Name               string    `gorm:"size:128;not null" json:"name"`
	ContactPerson      string    `gorm:"size:128" json:"contactPerson"`
	Email              string    `gorm:"size:256" json:"email"`
	Phone              string    `gorm:"size:32" json:"phone"`
	Status             CPOStatus `gorm:"size:16;index" json:"status"`
	ConnectionHealth   float64   `json:"connectionHealth"`
	APIVersion         string    `gorm:"column:api_version;size:32" json:"apiVersion"`
	AuthType           string    `gorm:"size:32" json:"authType"`
	BaseURL            string    `gorm:"column:base_url;size:256" json:"baseUrl"`
	Stations           int       `json:"stations"`
	ActiveStations     int       `json:"activeStations"`
	TotalRevenue       float64   `json:"totalRevenue"`
	LastSync           string    `gorm:"size:32" json:"lastSync"`
	OnboardedDate      string    `gorm:"size:32" json:"onboardedDate"`
	ContractStatus     string    `gorm:"size:16" json:"contractStatus"`
	SettlementSchedule string    `gorm:"size:16" json:"settlementSchedule"`
	ErrorMessage       string    `gorm:"size:256" json:"errorMessage,omitempty"`
}

// TableName keeps the acronym readable in SQL.
func (CPO) TableName() string { return "cpos" }

// IntegrationLog is one entry of the CPO integration activity log.
type IntegrationLog struct {
	Ordered

	ID        string `gorm:"primaryKey;size:32" json:"id"`
	Timestamp string `gorm:"size:32" json:"timestamp"`
	CPO       string `gorm:"column:cpo;size:128" json:"cpo"`
	Action    string `gorm:"size:64" json:"action"`
	Status    string `gorm:"size:16;index" json:"status"`
	Message   string `gorm:"size:256" json:"message"`
}
