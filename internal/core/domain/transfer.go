package domain

// TransferFlags is a bitmask of independent transfer capabilities.
type TransferFlags uint16

const (
	TransferFlagLinked TransferFlags = 1 << iota
	TransferFlagPending
	TransferFlagPostPending
	TransferFlagVoidPending
	TransferFlagBalancingDebit
	TransferFlagBalancingCredit
	TransferFlagClosingDebit
	TransferFlagClosingCredit
	TransferFlagImported
)

// transferFlagNames maps bit positions to display names, in bit order.
var transferFlagNames = []struct {
	flag TransferFlags
	name string
}{
	{TransferFlagLinked, "LINKED"},
	{TransferFlagPending, "PENDING"},
	{TransferFlagPostPending, "POST_PENDING"},
	{TransferFlagVoidPending, "VOID_PENDING"},
	{TransferFlagBalancingDebit, "BALANCING_DEBIT"},
	{TransferFlagBalancingCredit, "BALANCING_CREDIT"},
	{TransferFlagClosingDebit, "CLOSING_DEBIT"},
	{TransferFlagClosingCredit, "CLOSING_CREDIT"},
	{TransferFlagImported, "IMPORTED"},
}

// Names returns the display names of all set flags, in bit order.
func (f TransferFlags) Names() []string {
	var names []string
	for _, e := range transferFlagNames {
		if f&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

// Transfer is a read-only snapshot of a ledger transfer. The account id
// fields are weak references: this layer uses them only to build links and
// never dereferences them.
type Transfer struct {
	ID              string        `json:"id"`
	DebitAccountID  string        `json:"debit_account_id"`
	CreditAccountID string        `json:"credit_account_id"`
	Amount          string        `json:"amount"`
	PendingID       string        `json:"pending_id"`
	UserData128     string        `json:"user_data_128"`
	UserData64      uint64        `json:"user_data_64"`
	UserData32      uint32        `json:"user_data_32"`
	Timeout         uint32        `json:"timeout"`
	Ledger          uint32        `json:"ledger"`
	Code            uint16        `json:"code"`
	Flags           TransferFlags `json:"flags"`
	Timestamp       uint64        `json:"timestamp"`
}

// TransfersPage is one page of transfers plus the pagination cursor.
type TransfersPage struct {
	Transfers     []Transfer `json:"transfers"`
	NextTimestamp *uint64    `json:"next_timestamp,omitempty"`
}
