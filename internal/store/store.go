package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"evcharge-admin-backend/internal/model"
)

// ErrNotFound is returned when no record has the requested key.
var ErrNotFound = errors.New("record not found")

// Repository is the read-only access path to one record type.
type Repository[T any] interface {
	// List returns every record in seeding order. The result is never nil.
	List(ctx context.Context) ([]T, error)
	// Get returns the record with the given key or ErrNotFound.
	Get(ctx context.Context, id string) (T, error)
}

// Store defines the interface for all database operations.
type Store interface {
	Stations() Repository[model.Station]
	Chargers() Repository[model.Charger]
	Users() Repository[model.User]
	Transactions() Repository[model.Transaction]
	Wallets() Repository[model.Wallet]
	Settlements() Repository[model.Settlement]
	CPOs() Repository[model.CPO]
	IntegrationLogs() Repository[model.IntegrationLog]
	Tariffs() Repository[model.Tariff]
	Promotions() Repository[model.Promotion]
	Fees() Repository[model.Fee]
	Tickets() Repository[model.Ticket]
	Agents() Repository[model.Agent]
	Sessions() Repository[model.LiveSession]
	Activities() Repository[model.Activity]

	SaveSubscription(ctx context.Context, sub *model.PushSubscription) error
	GetSubscription(ctx context.Context, endpoint string) (*model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
	ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error)

	DB() *gorm.DB
}

// gormRepository implements Repository with GORM. key is the primary key
// column.
type gormRepository[T any] struct {
	db  *gorm.DB
	key string
}

// NewRepository creates a repository over the table of T.
func NewRepository[T any](db *gorm.DB, key string) Repository[T] {
	return &gormRepository[T]{db: db, key: key}
}

func (r *gormRepository[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("position").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return out, nil
}

func (r *gormRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var rec T
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: r.key}, Value: id}).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("fetching record %s: %w", id, err)
	}
	return rec, nil
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB

	stations        Repository[model.Station]
	chargers        Repository[model.Charger]
	users           Repository[model.User]
	transactions    Repository[model.Transaction]
	wallets         Repository[model.Wallet]
	settlements     Repository[model.Settlement]
	cpos            Repository[model.CPO]
	integrationLogs Repository[model.IntegrationLog]
	tariffs         Repository[model.Tariff]
	promotions      Repository[model.Promotion]
	fees            Repository[model.Fee]
	tickets         Repository[model.Ticket]
	agents          Repository[model.Agent]
	sessions        Repository[model.LiveSession]
	activities      Repository[model.Activity]
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{
		db:              db,
		stations:        NewRepository[model.Station](db, "id"),
		chargers:        NewRepository[model.Charger](db, "id"),
		users:           NewRepository[model.User](db, "id"),
		transactions:    NewRepository[model.Transaction](db, "id"),
		wallets:         NewRepository[model.Wallet](db, "user_id"),
		settlements:     NewRepository[model.Settlement](db, "id"),
		cpos:            NewRepository[model.CPO](db, "id"),
		integrationLogs: NewRepository[model.IntegrationLog](db, "id"),
		tariffs:         NewRepository[model.Tariff](db, "id"),
		promotions:      NewRepository[model.Promotion](db, "id"),
		fees:            NewRepository[model.Fee](db, "id"),
		tickets:         NewRepository[model.Ticket](db, "id"),
		agents:          NewRepository[model.Agent](db, "name"),
		sessions:        NewRepository[model.LiveSession](db, "id"),
		activities:      NewRepository[model.Activity](db, "id"),
	}
}

func (s *gormStore) DB() *gorm.DB { return s.db }

func (s *gormStore) Stations() Repository[model.Station]               { return s.stations }
func (s *gormStore) Chargers() Repository[model.Charger]               { return s.chargers }
func (s *gormStore) Users() Repository[model.User]                     { return s.users }
func (s *gormStore) Transactions() Repository[model.Transaction]       { return s.transactions }
func (s *gormStore) Wallets() Repository[model.Wallet]                 { return s.wallets }
func (s *gormStore) Settlements() Repository[model.Settlement]         { return s.settlements }
func (s *gormStore) CPOs() Repository[model.CPO]                       { return s.cpos }
func (s *gormStore) IntegrationLogs() Repository[model.IntegrationLog] { return s.integrationLogs }
func (s *gormStore) Tariffs() Repository[model.Tariff]                 { return s.tariffs }
func (s *gormStore) Promotions() Repository[model.Promotion]           { return s.promotions }
func (s *gormStore) Fees() Repository[model.Fee]                       { return s.fees }
func (s *gormStore) Tickets() Repository[model.Ticket]                 { return s.tickets }
func (s *gormStore) Agents() Repository[model.Agent]                   { return s.agents }
func (s *gormStore) Sessions() Repository[model.LiveSession]           { return s.sessions }
func (s *gormStore) Activities() Repository[model.Activity]            { return s.activities }
