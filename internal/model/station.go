package model

// StationStatus is the operational state of a charging station.
type StationStatus string

const (
	StationOnline      StationStatus = "online"
	StationOffline     StationStatus = "offline"
	StationMaintenance StationStatus = "maintenance"
)

// Connectivity grades the station's network link.
type Connectivity string

const (
	ConnectivityExcellent Connectivity = "excellent"
	ConnectivityGood      Connectivity = "good"
	ConnectivityPoor      Connectivity = "poor"
)

// Station is a charging site operated on the network.
type Station struct {
	Ordered

	ID              string        `gorm:"primaryKey;size:32" json:"id"`
	Name            string        `gorm:"size:128;not null" json:"name"`
	Location        string        `gorm:"size:128;index" json:"location"`
	Address         string        `gorm:"size:256" json:"address"`
	Status          StationStatus `gorm:"size:16;index" json:"status"`
	TotalChargers   int           `json:"totalChargers"`
	ActiveChargers  int           `json:"activeChargers"`
	Revenue         float64       `json:"revenue"`
	SessionsToday   int           `json:"sessionsToday"`
	Rating          float64       `json:"rating"`
	LastMaintenance string        `gorm:"size:32" json:"lastMaintenance"`
	PowerCapacity   string        `gorm:"size:32" json:"powerCapacity"`
	Connectivity    Connectivity  `gorm:"size:16" json:"connectivity"`
	OperatorName    string        `gorm:"size:128" json:"operatorName,omitempty"`
	InstallDate     string        `gorm:"size:32" json:"installDate"`
}
