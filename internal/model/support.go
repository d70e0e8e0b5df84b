package model

// TicketStatus tracks a support ticket through its lifecycle.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
	TicketEscalated  TicketStatus = "escalated"
)

// Priority of a ticket.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Customer is the contact who raised a ticket.
type Customer struct {
	Name   string `gorm:"size:128" json:"name"`
	Email  string `gorm:"size:256" json:"email"`
	Phone  string `gorm:"size:32" json:"phone"`
	UserID string `gorm:"size:32" json:"userId"`
}

// TicketMessage is one entry of a ticket conversation.
type TicketMessage struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"` // customer or agent
}

// Ticket is a customer support case.
type Ticket struct {
	Ordered

	ID             string          `gorm:"primaryKey;size:32" json:"id"`
	Subject        string          `gorm:"size:256;not null" json:"subject"`
	Description    string          `gorm:"size:1024" json:"description"`
	Customer       Customer        `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Priority       Priority        `gorm:"size:16;index" json:"priority"`
	Status         TicketStatus    `gorm:"size:16;index" json:"status"`
	Category       string          `gorm:"size:24" json:"category"`
	AssignedTo     string          `gorm:"size:128" json:"assignedTo"`
	Station        string          `gorm:"size:128" json:"station,omitempty"`
	CreatedDate    string          `gorm:"size:32" json:"createdDate"`
	LastUpdated    string          `gorm:"size:32" json:"lastUpdated"`
	ResponseTime   string          `gorm:"size:32" json:"responseTime"`
	ResolutionTime string          `gorm:"size:32" json:"resolutionTime,omitempty"`
	Rating         *float64        `json:"rating,omitempty"`
	SessionID      string          `gorm:"size:32" json:"sessionId,omitempty"`
	Messages       []TicketMessage `gorm:"serializer:json" json:"messages"`
}

// Agent is a support team member. The name doubles as the identifier.
type Agent struct {
	Ordered

	Name            string  `gorm:"primaryKey;size:128" json:"name"`
	Role            string  `gorm:"size:64" json:"role"`
	ActiveTickets   int     `json:"activeTickets"`
	ResolvedToday   int     `json:"resolvedToday"`
	AvgResponseTime string  `gorm:"size:32" json:"avgResponseTime"`
	Rating          float64 `json:"rating"`
	Status          string  `gorm:"size:16;index" json:"status"`
}
