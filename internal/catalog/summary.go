package catalog

import (
	"math"

	"evcharge-admin-backend/internal/model"
)

// Percent returns n as a share of total, rounded to one decimal. A zero
// total yields 0.
func Percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

func count[T any](rs []T, pred func(T) bool) int {
	n := 0
	for _, r := range rs {
		if pred(r) {
			n++
		}
	}
	return n
}

func countBy[T any](rs []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, r := range rs {
		out[key(r)]++
	}
	return out
}

func sum[T any](rs []T, v func(T) float64) float64 {
	var total float64
	for _, r := range rs {
		total += v(r)
	}
	return total
}

func stationSummary(rs []model.Station) Summary {
	online := count(rs, func(r model.Station) bool { return r.Status == model.StationOnline })
	return Summary{
		"total":          len(rs),
		"online":         online,
		"maintenance":    count(rs, func(r model.Station) bool { return r.Status == model.StationMaintenance }),
		"offline":        count(rs, func(r model.Station) bool { return r.Status == model.StationOffline }),
		"operational":    Percent(online, len(rs)),
		"activeChargers": int(sum(rs, func(r model.Station) float64 { return float64(r.ActiveChargers) })),
		"totalChargers":  int(sum(rs, func(r model.Station) float64 { return float64(r.TotalChargers) })),
		"revenue":        sum(rs, func(r model.Station) float64 { return r.Revenue }),
	}
}

func chargerSummary(rs []model.Charger) Summary {
	return Summary{
		"total":     len(rs),
		"available": count(rs, func(r model.Charger) bool { return r.Status == model.ChargerAvailable }),
		"charging":  count(rs, func(r model.Charger) bool { return r.Status == model.ChargerCharging }),
		"offline":   count(rs, func(r model.Charger) bool { return r.Status == model.ChargerOffline }),
		"energy":    sum(rs, func(r model.Charger) float64 { return r.EnergyDelivered }),
	}
}

func userSummary(rs []model.User) Summary {
	active := count(rs, func(r model.User) bool { return r.Status == model.UserActive })
	avg := 0.0
	if len(rs) > 0 {
		avg = math.Round(sum(rs, func(r model.User) float64 { return float64(r.TotalSessions) }) / float64(len(rs)))
	}
	return Summary{
		"total":         len(rs),
		"active":        active,
		"activePercent": Percent(active, len(rs)),
		"premium":       count(rs, func(r model.User) bool { return r.MembershipTier == model.TierPremium }),
		"avgSessions":   int(avg),
	}
}

func transactionSummary(rs []model.Transaction) Summary {
	return Summary{
		"total":     len(rs),
		"completed": count(rs, func(r model.Transaction) bool { return r.Status == model.PaymentCompleted }),
		"volume":    sum(rs, func(r model.Transaction) float64 { return r.Amount }),
	}
}

func walletSummary(rs []model.Wallet) Summary {
	return Summary{
		"total":   len(rs),
		"balance": sum(rs, func(r model.Wallet) float64 { return r.CurrentBalance }),
	}
}

func settlementSummary(rs []model.Settlement) Summary {
	pending := func(r model.Settlement) bool { return r.Status == model.PaymentPending }
	amount := sum(rs, func(r model.Settlement) float64 {
		if pending(r) {
			return r.Amount
		}
		return 0
	})
	return Summary{
		"total":         len(rs),
		"pending":       count(rs, pending),
		"pendingAmount": amount,
		"onHold":        count(rs, func(r model.Settlement) bool { return r.Status == model.PaymentHold }),
	}
}

func cpoSummary(rs []model.CPO) Summary {
	return Summary{
		"total":     len(rs),
		"connected": count(rs, func(r model.CPO) bool { return r.Status == model.CPOConnected }),
		"errors":    count(rs, func(r model.CPO) bool { return r.Status == model.CPOError }),
		"stations":  int(sum(rs, func(r model.CPO) float64 { return float64(r.Stations) })),
	}
}

// Tariff revenue figures are reported by billing and kept as given.
func tariffSummary(rs []model.Tariff) Summary {
	return Summary{
		"total":             len(rs),
		"active":            count(rs, func(r model.Tariff) bool { return r.Status == model.LifecycleActive }),
		"totalRevenue":      4035430,
		"avgRate":           12.8,
		"mostPopular":       "Standard DC Fast Charging",
		"revenueGrowth":     15.3,
		"totalTransactions": 2829,
		"avgSessionValue":   142.5,
	}
}

func promotionSummary(rs []model.Promotion) Summary {
	return Summary{
		"total":  len(rs),
		"active": count(rs, func(r model.Promotion) bool { return r.Status == model.LifecycleActive }),
		"usage":  int(sum(rs, func(r model.Promotion) float64 { return float64(r.CurrentUsage) })),
	}
}

func feeSummary(rs []model.Fee) Summary {
	return Summary{
		"total":                len(rs),
		"active":               count(rs, func(r model.Fee) bool { return r.Status == model.LifecycleActive }),
		"totalRevenue":         3740460,
		"monthlyGrowth":        15.3,
		"avgFeePerTransaction": 24.50,
		"topPerformer":         "Standard Platform Fee",
	}
}

func ticketSummary(rs []model.Ticket) Summary {
	is := func(s model.TicketStatus) func(model.Ticket) bool {
		return func(r model.Ticket) bool { return r.Status == s }
	}
	return Summary{
		"total":      len(rs),
		"open":       count(rs, is(model.TicketOpen)),
		"inProgress": count(rs, is(model.TicketInProgress)),
		"escalated":  count(rs, is(model.TicketEscalated)),
		"resolved":   count(rs, is(model.TicketResolved)),
	}
}
