package model

// TransactionType classifies a money movement.
type TransactionType string

const (
	TxPayment        TransactionType = "payment"
	TxWalletRecharge TransactionType = "wallet_recharge"
	TxRefund         TransactionType = "refund"
	TxPayout         TransactionType = "payout"
)

// PaymentStatus is shared by transactions and settlements.
type PaymentStatus string

const (
	PaymentCompleted  PaymentStatus = "completed"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPending    PaymentStatus = "pending"
	PaymentFailed     PaymentStatus = "failed"
	PaymentHold       PaymentStatus = "hold"
)

// Transaction is a single ledger entry. The fare breakdown is present only
// for session payments.
type Transaction struct {
	Ordered

	ID            string          `gorm:"primaryKey;size:32" json:"id"`
	Type          TransactionType `gorm:"size:24;index" json:"type"`
	Status        PaymentStatus   `gorm:"size:16;index" json:"status"`
	Amount        float64         `json:"amount"`
	BaseFare      *float64        `json:"baseFare,omitempty"`
	GST           *float64        `gorm:"column:gst" json:"gst,omitempty"`
	PlatformFee   *float64        `json:"platformFee,omitempty"`
	NetToCPO      *float64        `gorm:"column:net_to_cpo" json:"netToCPO,omitempty"`
	User          string          `gorm:"size:128" json:"user,omitempty"`
	CPO           string          `gorm:"column:cpo;size:128" json:"cpo,omitempty"`
	Station       string          `gorm:"size:128" json:"station,omitempty"`
	SessionID     string          `gorm:"size:32" json:"sessionId,omitempty"`
	PaymentMethod string          `gorm:"size:64" json:"paymentMethod,omitempty"`
	GatewayRef    string          `gorm:"size:64" json:"gatewayRef,omitempty"`
	RefundReason  string          `gorm:"size:256" json:"refundReason,omitempty"`
	PayoutPeriod  string          `gorm:"size:64" json:"payoutPeriod,omitempty"`
	BankAccount   string          `gorm:"size:64" json:"bankAccount,omitempty"`
	Timestamp     string          `gorm:"size:32" json:"timestamp"`
}

// Wallet is a driver's prepaid balance, keyed by user ID.
type Wallet struct {
	Ordered

	UserID         string  `gorm:"primaryKey;size:32" json:"userId"`
	Name           string  `gorm:"size:128" json:"name"`
	CurrentBalance float64 `json:"currentBalance"`
	TotalRecharges float64 `json:"totalRecharges"`
	TotalSpent     float64 `json:"totalSpent"`
	LastActivity   string  `gorm:"size:32" json:"lastActivity"`
	Status         string  `gorm:"size:16;index" json:"status"`
}

// Settlement is a payout batch owed to a CPO.
type Settlement struct {
	Ordered

	ID           string        `gorm:"primaryKey;size:32" json:"id"`
	CPO          string        `gorm:"column:cpo;size:128" json:"cpo"`
	Amount       float64       `json:"amount"`
	Period       string        `gorm:"size:64" json:"period"`
	Transactions int           `json:"transactions"`
	BankAccount  string        `gorm:"size:64" json:"bankAccount"`
	KYCStatus    string        `gorm:"column:kyc_status;size:16;index" json:"kycStatus"`
	Status       PaymentStatus `gorm:"size:16;index" json:"status"`
	ProcessedAt  string        `gorm:"size:32" json:"processedAt,omitempty"`
	ScheduledAt  string        `gorm:"size:32" json:"scheduledAt,omitempty"`
	Note         string        `gorm:"size:256" json:"note,omitempty"`
}
