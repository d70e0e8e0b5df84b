package model

// SessionStatus is the state of a live charging session.
type SessionStatus string

const (
	SessionCharging  SessionStatus = "charging"
	SessionCompleted SessionStatus = "completed"
	SessionError     SessionStatus = "error"
)

// LiveSession is a charging session shown on the dashboard. Energy and cost
// are display strings.
type LiveSession struct {
	Ordered

	ID           string        `gorm:"primaryKey;size:32" json:"id"`
	User         string        `gorm:"size:128" json:"user"`
	Station      string        `gorm:"size:128" json:"station"`
	Duration     string        `gorm:"size:32" json:"duration"`
	Energy       string        `gorm:"size:32" json:"energy"`
	Cost         string        `gorm:"size:32" json:"cost"`
	Status       SessionStatus `gorm:"size:16;index" json:"status"`
	StartTime    string        `gorm:"size:32" json:"startTime"`
	VehicleModel string        `gorm:"size:64" json:"vehicleModel,omitempty"`
	ChargerType  string        `gorm:"size:64" json:"chargerType"`
}

// Activity is an entry of the network activity feed.
type Activity struct {
	Ordered

	ID          int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Action      string `gorm:"size:128" json:"action"`
	Location    string `gorm:"size:128" json:"location"`
	Time        string `gorm:"size:32" json:"time"`
	Type        string `gorm:"size:16;index" json:"type"`
	Description string `gorm:"size:256" json:"description,omitempty"`
	Severity    string `gorm:"size:16;index" json:"severity"`
}
