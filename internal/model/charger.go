package model

// ChargerStatus is the state of a single charger.
type ChargerStatus string

const (
	ChargerCharging    ChargerStatus = "charging"
	ChargerAvailable   ChargerStatus = "available"
	ChargerOffline     ChargerStatus = "offline"
	ChargerMaintenance ChargerStatus = "maintenance"
)

// Charger is one charging unit. Station and StationID are free text and
// are not checked against the station records.
type Charger struct {
	Ordered

	ID              string        `gorm:"primaryKey;size:32" json:"id"`
	Station         string        `gorm:"size:128" json:"station"`
	StationID       string        `gorm:"size:32;index" json:"stationId"`
	Location        string        `gorm:"size:128" json:"location"`
	ConnectorType   string        `gorm:"size:64" json:"connectorType"`
	MaxPower        float64       `json:"maxPower"`
	CurrentPower    float64       `json:"currentPower"`
	Voltage         float64       `json:"voltage"`
	Current         float64       `json:"current"`
	Status          ChargerStatus `gorm:"size:16;index" json:"status"`
	SessionID       *string       `gorm:"size:32" json:"sessionId"`
	User            *string       `gorm:"size:128" json:"user"`
	SessionDuration *string       `gorm:"size:32" json:"sessionDuration"`
	EnergyDelivered float64       `json:"energyDelivered"`
	Temperature     float64       `json:"temperature"`
	Efficiency      float64       `json:"efficiency"`
	Uptime          float64       `json:"uptime"`
	TotalSessions   int           `json:"totalSessions"`
	LastMaintenance string        `gorm:"size:32" json:"lastMaintenance"`
	NextMaintenance string        `gorm:"size:32" json:"nextMaintenance"`
}

// InSession reports whether the charger currently carries a session.
func (c Charger) InSession() bool {
	return c.SessionID != nil && *c.SessionID != ""
}
