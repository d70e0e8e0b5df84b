package catalog

import (
	"strconv"

	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/detail"
	"evcharge-admin-backend/internal/filter"
	"evcharge-admin-backend/internal/model"
	"evcharge-admin-backend/internal/store"
	"evcharge-admin-backend/internal/views"
)

func newCollection[T any](
	name string,
	view views.Key,
	repo store.Repository[T],
	sel detail.SelectionStore,
	spec filter.Spec[T],
	subject func(T) command.Subject,
	summarize func([]T) Summary,
) *collection[T] {
	return &collection[T]{
		name:      name,
		view:      view,
		repo:      repo,
		spec:      spec,
		subject:   subject,
		summarize: summarize,
		shell:     detail.NewShell[T](sel, name),
	}
}

func collections(s store.Store, sel detail.SelectionStore) []Collection {
	return []Collection{
		newCollection("stations", views.Stations, s.Stations(), sel,
			filter.Spec[model.Station]{
				Search: []filter.Field[model.Station]{
					field("name", func(r model.Station) string { return r.Name }),
					field("location", func(r model.Station) string { return r.Location }),
					field("address", func(r model.Station) string { return r.Address }),
				},
				Exact: []filter.Field[model.Station]{
					field("status", func(r model.Station) string { return string(r.Status) }),
					field("location", func(r model.Station) string { return r.Location }),
				},
			},
			func(r model.Station) command.Subject {
				return command.Subject{"id": r.ID, "name": r.Name, "location": r.Location}
			},
			stationSummary,
		),
		newCollection("chargers", views.Chargers, s.Chargers(), sel,
			filter.Spec[model.Charger]{
				Search: []filter.Field[model.Charger]{
					field("id", func(r model.Charger) string { return r.ID }),
					field("station", func(r model.Charger) string { return r.Station }),
					field("location", func(r model.Charger) string { return r.Location }),
				},
				Exact: []filter.Field[model.Charger]{
					field("status", func(r model.Charger) string { return string(r.Status) }),
					field("station", func(r model.Charger) string { return r.StationID }),
				},
			},
			func(r model.Charger) command.Subject {
				return command.Subject{"id": r.ID, "station": r.Station}
			},
			chargerSummary,
		),
		newCollection("users", views.Users, s.Users(), sel,
			filter.Spec[model.User]{
				Search: []filter.Field[model.User]{
					field("name", func(r model.User) string { return r.Name }),
					field("email", func(r model.User) string { return r.Email }),
					rawField("phone", func(r model.User) string { return r.Phone }),
				},
				Exact: []filter.Field[model.User]{
					field("status", func(r model.User) string { return string(r.Status) }),
					field("tier", func(r model.User) string { return string(r.MembershipTier) }),
				},
			},
			func(r model.User) command.Subject {
				return command.Subject{"id": r.ID, "name": r.Name, "email": r.Email}
			},
			userSummary,
		),
		newCollection("transactions", views.Payments, s.Transactions(), sel,
			filter.Spec[model.Transaction]{
				Search: []filter.Field[model.Transaction]{
					field("id", func(r model.Transaction) string { return r.ID }),
					field("user", func(r model.Transaction) string { return r.User }),
					field("cpo", func(r model.Transaction) string { return r.CPO }),
				},
				Exact: []filter.Field[model.Transaction]{
					field("status", func(r model.Transaction) string { return string(r.Status) }),
				},
			},
			func(r model.Transaction) command.Subject {
				return command.Subject{"id": r.ID, "user": r.User, "cpo": r.CPO}
			},
			transactionSummary,
		),
		newCollection("wallets", views.Payments, s.Wallets(), sel,
			filter.Spec[model.Wallet]{
				Search: []filter.Field[model.Wallet]{
					field("name", func(r model.Wallet) string { return r.Name }),
					field("userId", func(r model.Wallet) string { return r.UserID }),
				},
				Exact: []filter.Field[model.Wallet]{
					field("status", func(r model.Wallet) string { return r.Status }),
				},
			},
			func(r model.Wallet) command.Subject {
				return command.Subject{"id": r.UserID, "name": r.Name}
			},
			walletSummary,
		),
		newCollection("settlements", views.Payments, s.Settlements(), sel,
			filter.Spec[model.Settlement]{
				Search: []filter.Field[model.Settlement]{
					field("cpo", func(r model.Settlement) string { return r.CPO }),
					field("id", func(r model.Settlement) string { return r.ID }),
				},
				Exact: []filter.Field[model.Settlement]{
					field("status", func(r model.Settlement) string { return string(r.Status) }),
					field("kyc", func(r model.Settlement) string { return r.KYCStatus }),
				},
			},
			func(r model.Settlement) command.Subject {
				return command.Subject{"id": r.ID, "cpo": r.CPO}
			},
			settlementSummary,
		),
		newCollection("cpos", views.CPO, s.CPOs(), sel,
			filter.Spec[model.CPO]{
				Search: []filter.Field[model.CPO]{
					field("name", func(r model.CPO) string { return r.Name }),
					field("contactPerson", func(r model.CPO) string { return r.ContactPerson }),
					field("email", func(r model.CPO) string { return r.Email }),
				},
				Exact: []filter.Field[model.CPO]{
					field("status", func(r model.CPO) string { return string(r.Status) }),
				},
			},
			func(r model.CPO) command.Subject {
				return command.Subject{"id": r.ID, "name": r.Name}
			},
			cpoSummary,
		),
		newCollection("integration-logs", views.CPO, s.IntegrationLogs(), sel,
			filter.Spec[model.IntegrationLog]{
				Search: []filter.Field[model.IntegrationLog]{
					field("cpo", func(r model.IntegrationLog) string { return r.CPO }),
					field("action", func(r model.IntegrationLog) string { return r.Action }),
					field("message", func(r model.IntegrationLog) string { return r.Message }),
				},
				Exact: []filter.Field[model.IntegrationLog]{
					field("status", func(r model.IntegrationLog) string { return r.Status }),
				},
			},
			func(r model.IntegrationLog) command.Subject {
				return command.Subject{"id": r.ID, "cpo": r.CPO}
			},
			func(rs []model.IntegrationLog) Summary {
				return Summary{"total": len(rs), "byStatus": countBy(rs, func(r model.IntegrationLog) string { return r.Status })}
			},
		),
		newCollection("tariffs", views.Pricing, s.Tariffs(), sel,
			filter.Spec[model.Tariff]{
				Search: []filter.Field[model.Tariff]{
					field("name", func(r model.Tariff) string { return r.Name }),
					field("connectorType", func(r model.Tariff) string { return r.ConnectorType }),
				},
				Exact: []filter.Field[model.Tariff]{
					field("type", func(r model.Tariff) string { return string(r.Type) }),
					field("status", func(r model.Tariff) string { return string(r.Status) }),
				},
			},
			func(r model.Tariff) command.Subject {
				return command.Subject{"id": r.ID, "name": r.Name}
			},
			tariffSummary,
		),
		newCollection("promotions", views.Pricing, s.Promotions(), sel,
			filter.Spec[model.Promotion]{
				Search: []filter.Field[model.Promotion]{
					field("name", func(r model.Promotion) string { return r.Name }),
					field("description", func(r model.Promotion) string { return r.Description }),
				},
				Exact: []filter.Field[model.Promotion]{
					field("type", func(r model.Promotion) string { return r.Type }),
					field("status", func(r model.Promotion) string { return string(r.Status) }),
				},
			},
			func(r model.Promotion) command.Subject {
				return command.Subject{"id": r.ID, "name": r.Name}
			},
			promotionSummary,
		),
		newCollection("fees", views.PlatformFees, s.Fees(), sel,
			filter.Spec[model.Fee]{
				Search: []filter.Field[model.Fee]{
					field("name", func(r model.Fee) string { return r.Name }),
					field("targetName", func(r model.Fee) string { return r.TargetName }),
				},
				Exact: []filter.Field[model.Fee]{
					field("type", func(r model.Fee) string { return r.ApplicationType }),
					field("status", func(r model.Fee) string { return string(r.Status) }),
				},
			},
			func(r model.Fee) command.Subject {
				return command.Subject{"id": r.ID, "name": r.Name}
			},
			feeSummary,
		),
		newCollection("tickets", views.Support, s.Tickets(), sel,
			filter.Spec[model.Ticket]{
				Search: []filter.Field[model.Ticket]{
					field("subject", func(r model.Ticket) string { return r.Subject }),
					field("customer", func(r model.Ticket) string { return r.Customer.Name }),
					field("id", func(r model.Ticket) string { return r.ID }),
				},
				Exact: []filter.Field[model.Ticket]{
					field("status", func(r model.Ticket) string { return string(r.Status) }),
					field("priority", func(r model.Ticket) string { return string(r.Priority) }),
				},
			},
			func(r model.Ticket) command.Subject {
				return command.Subject{"id": r.ID, "subject": r.Subject, "customer": r.Customer.Name}
			},
			ticketSummary,
		),
		newCollection("agents", views.Support, s.Agents(), sel,
			filter.Spec[model.Agent]{
				Search: []filter.Field[model.Agent]{
					field("name", func(r model.Agent) string { return r.Name }),
					field("role", func(r model.Agent) string { return r.Role }),
				},
				Exact: []filter.Field[model.Agent]{
					field("status", func(r model.Agent) string { return r.Status }),
				},
			},
			func(r model.Agent) command.Subject {
				return command.Subject{"id": r.Name, "name": r.Name}
			},
			func(rs []model.Agent) Summary {
				return Summary{"total": len(rs), "byStatus": countBy(rs, func(r model.Agent) string { return r.Status })}
			},
		),
		newCollection("sessions", views.Dashboard, s.Sessions(), sel,
			filter.Spec[model.LiveSession]{
				Search: []filter.Field[model.LiveSession]{
					field("user", func(r model.LiveSession) string { return r.User }),
					field("station", func(r model.LiveSession) string { return r.Station }),
					field("id", func(r model.LiveSession) string { return r.ID }),
				},
				Exact: []filter.Field[model.LiveSession]{
					field("status", func(r model.LiveSession) string { return string(r.Status) }),
				},
			},
			func(r model.LiveSession) command.Subject {
				return command.Subject{"id": r.ID, "user": r.User, "station": r.Station}
			},
			func(rs []model.LiveSession) Summary {
				return Summary{
					"total":    len(rs),
					"charging": count(rs, func(r model.LiveSession) bool { return r.Status == model.SessionCharging }),
				}
			},
		),
		newCollection("activities", views.Dashboard, s.Activities(), sel,
			filter.Spec[model.Activity]{
				Search: []filter.Field[model.Activity]{
					field("action", func(r model.Activity) string { return r.Action }),
					field("location", func(r model.Activity) string { return r.Location }),
				},
				Exact: []filter.Field[model.Activity]{
					field("type", func(r model.Activity) string { return r.Type }),
					field("severity", func(r model.Activity) string { return r.Severity }),
				},
			},
			func(r model.Activity) command.Subject {
				return command.Subject{"id": strconv.FormatInt(r.ID, 10), "action": r.Action, "location": r.Location}
			},
			func(rs []model.Activity) Summary {
				return Summary{"total": len(rs), "bySeverity": countBy(rs, func(r model.Activity) string { return r.Severity })}
			},
		),
	}
}
