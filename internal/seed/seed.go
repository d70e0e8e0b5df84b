// Package seed loads the fixture records shown by the dashboard.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"evcharge-admin-backend/internal/model"
)

//go:embed seed.yaml
var defaultFixture []byte

// Fixture is the full set of records, in display order.
type Fixture struct {
	Stations        []model.Station
	Chargers        []model.Charger
	Users           []model.User
	Transactions    []model.Transaction
	Wallets         []model.Wallet
	Settlements     []model.Settlement
	CPOs            []model.CPO
	IntegrationLogs []model.IntegrationLog
	Tariffs         []model.Tariff
	Promotions      []model.Promotion
	Fees            []model.Fee
	Tickets         []model.Ticket
	Agents          []model.Agent
	Sessions        []model.LiveSession
	Activities      []model.Activity
}

// Default parses the embedded fixture.
func Default() (*Fixture, error) {
	return Load(defaultFixture)
}

// Load parses a YAML fixture. Record keys use the JSON field names, so each
// section is decoded through encoding/json into the model types.
func Load(data []byte) (*Fixture, error) {
	var raw map[string][]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	f := &Fixture{}
	steps := []struct {
		key  string
		into any
	}{
		{"stations", &f.Stations},
		{"chargers", &f.Chargers},
		{"users", &f.Users},
		{"transactions", &f.Transactions},
		{"wallets", &f.Wallets},
		{"settlements", &f.Settlements},
		{"cpos", &f.CPOs},
		{"integrationLogs", &f.IntegrationLogs},
		{"tariffs", &f.Tariffs},
		{"promotions", &f.Promotions},
		{"fees", &f.Fees},
		{"tickets", &f.Tickets},
		{"agents", &f.Agents},
		{"sessions", &f.Sessions},
		{"activities", &f.Activities},
	}
	for _, s := range steps {
		section, ok := raw[s.key]
		if !ok {
			continue
		}
		b, err := json.Marshal(section)
		if err != nil {
			return nil, fmt.Errorf("encoding section %s: %w", s.key, err)
		}
		if err := json.Unmarshal(b, s.into); err != nil {
			return nil, fmt.Errorf("decoding section %s: %w", s.key, err)
		}
	}
	return f, nil
}

// Apply inserts every fixture record, skipping rows whose primary key
// already exists. It runs in a single transaction.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture, log *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range f.tables() {
			if err := t.insert(tx); err != nil {
				return fmt.Errorf("seeding %s: %w", t.name, err)
			}
			log.Debug("seeded table", zap.String("table", t.name), zap.Int("rows", t.rows))
		}
		return nil
	})
}

type table struct {
	name   string
	rows   int
	insert func(tx *gorm.DB) error
}

func (f *Fixture) tables() []table {
	return []table{
		{"stations", len(f.Stations), inserter(f.Stations)},
		{"chargers", len(f.Chargers), inserter(f.Chargers)},
		{"users", len(f.Users), inserter(f.Users)},
		{"transactions", len(f.Transactions), inserter(f.Transactions)},
		{"wallets", len(f.Wallets), inserter(f.Wallets)},
		{"settlements", len(f.Settlements), inserter(f.Settlements)},
		{"cpos", len(f.CPOs), inserter(f.CPOs)},
		{"integration_logs", len(f.IntegrationLogs), inserter(f.IntegrationLogs)},
		{"tariffs", len(f.Tariffs), inserter(f.Tariffs)},
		{"promotions", len(f.Promotions), inserter(f.Promotions)},
		{"fees", len(f.Fees), inserter(f.Fees)},
		{"tickets", len(f.Tickets), inserter(f.Tickets)},
		{"agents", len(f.Agents), inserter(f.Agents)},
		{"live_sessions", len(f.Sessions), inserter(f.Sessions)},
		{"activities", len(f.Activities), inserter(f.Activities)},
	}
}

type positioned interface {
	SetPosition(int)
}

// inserter assigns positions in slice order and returns a func creating
// the rows. The caller's slice is not modified.
func inserter[T any, PT interface {
	*T
	positioned
}](records []T) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if len(records) == 0 {
			return nil
		}
		rows := make([]T, len(records))
		copy(rows, records)
		for i := range rows {
			PT(&rows[i]).SetPosition(i)
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	}
}
