package model

// TariffType groups tariffs by how they are applied.
type TariffType string

const (
	TariffConnectorBased  TariffType = "connector_based"
	TariffStationSpecific TariffType = "station_specific"
	TariffTimeBased       TariffType = "time_based"
	TariffUserGroup       TariffType = "user_group"
	TariffDynamic         TariffType = "dynamic"
)

// Lifecycle is the publication state shared by tariffs, promotions and fees.
type Lifecycle string

const (
	LifecycleActive    Lifecycle = "active"
	LifecycleDraft     Lifecycle = "draft"
	LifecycleScheduled Lifecycle = "scheduled"
	LifecycleExpired   Lifecycle = "expired"
)

// TimeBasedRate is the rate charged during one period of the day.
type TimeBasedRate struct {
	Period    string  `json:"period"`
	Rate      float64 `json:"rate"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
}

// DynamicPricing bounds the demand-driven rate.
type DynamicPricing struct {
	Enabled          bool    `json:"enabled"`
	DemandMultiplier float64 `json:"demandMultiplier"`
	MaxRate          float64 `json:"maxRate"`
	MinRate          float64 `json:"minRate"`
}

// Tariff is a pricing rule for charging sessions.
type Tariff struct {
	Ordered

	ID                 string          `gorm:"primaryKey;size:32" json:"id"`
	Name               string          `gorm:"size:128;not null" json:"name"`
	Type               TariffType      `gorm:"size:24;index" json:"type"`
	ConnectorType      string          `gorm:"size:64" json:"connectorType"`
	BaseRate           float64         `json:"baseRate"`
	Currency           string          `gorm:"size:8" json:"currency"`
	Unit               string          `gorm:"size:16" json:"unit"`
	TimeBasedRates     []TimeBasedRate `gorm:"serializer:json" json:"timeBasedRates,omitempty"`
	ApplicableStations []string        `gorm:"serializer:json" json:"applicableStations"`
	Status             Lifecycle       `gorm:"size:16;index" json:"status"`
	CreatedDate        string          `gorm:"size:32" json:"createdDate"`
	LastModified       string          `gorm:"size:32" json:"lastModified"`
	UsageCount         int             `json:"usageCount"`
	TotalRevenue       float64         `json:"totalRevenue"`
	DiscountPercentage *float64        `json:"discountPercentage,omitempty"`
	MinimumVehicles    *int            `json:"minimumVehicles,omitempty"`
	ValidDays          []string        `gorm:"serializer:json" json:"validDays,omitempty"`
	Description        string          `gorm:"size:512" json:"description,omitempty"`
	DynamicPricing     *DynamicPricing `gorm:"serializer:json" json:"dynamicPricing,omitempty"`
}

// PromotionConditions restricts where and when a promotion applies.
type PromotionConditions struct {
	MinimumAmount *float64 `json:"minimumAmount,omitempty"`
	ValidStations []string `json:"validStations,omitempty"`
	ValidDays     []string `json:"validDays,omitempty"`
}

// Promotion is a marketing campaign such as a discount or cashback.
type Promotion struct {
	Ordered

	ID           string               `gorm:"primaryKey;size:32" json:"id"`
	Name         string               `gorm:"size:128;not null" json:"name"`
	Type         string               `gorm:"size:24;index" json:"type"`
	Value        float64              `json:"value"`
	ValueType    string               `gorm:"size:16" json:"valueType"`
	TargetGroup  string               `gorm:"size:24" json:"targetGroup"`
	MaxUsage     int                  `json:"maxUsage"`
	CurrentUsage int                  `json:"currentUsage"`
	StartDate    string               `gorm:"size:32" json:"startDate"`
	EndDate      string               `gorm:"size:32" json:"endDate"`
	Status       Lifecycle            `gorm:"size:16;index" json:"status"`
	Description  string               `gorm:"size:512" json:"description,omitempty"`
	Conditions   *PromotionConditions `gorm:"serializer:json" json:"conditions,omitempty"`
}
