// Package model defines the records served by the admin dashboard.
package model

// All returns one pointer per persisted record type, in migration order.
func All() []any {
	return []any{
		&Station{},
		&Charger{},
		&User{},
		&Transaction{},
		&Wallet{},
		&Settlement{},
		&CPO{},
		&IntegrationLog{},
		&Tariff{},
		&Promotion{},
		&Fee{},
		&Ticket{},
		&Agent{},
		&LiveSession{},
		&Activity{},
		&PushSubscription{},
	}
}

// Ordered records the fixture order of a record. Listings sort on it so
// records come back in the order they were seeded.
type Ordered struct {
	Position int `gorm:"index;not null" json:"-"`
}

// SetPosition assigns the listing position.
func (o *Ordered) SetPosition(p int) { o.Position = p }
