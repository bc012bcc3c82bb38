package domain

// ZeroID is the all-zero 128-bit identifier used as the "unset" sentinel.
// IDs travel on the wire as 32-character lowercase hex strings.
const ZeroID = "00000000000000000000000000000000"

// AccountFlags is a bitmask of independent account capabilities.
// Mutual exclusivity between flags is enforced by the ledger service,
// not by this layer.
type AccountFlags uint16

const (
	AccountFlagLinked AccountFlags = 1 << iota
	AccountFlagDebitsMustNotExceedCredits
	AccountFlagCreditsMustNotExceedDebits
	AccountFlagHistory
	AccountFlagImported
	AccountFlagClosed
)

// accountFlagNames maps bit positions to display names, in bit order.
var accountFlagNames = []struct {
	flag AccountFlags
	name string
}{
	{AccountFlagLinked, "LINKED"},
	{AccountFlagDebitsMustNotExceedCredits, "DEBITS_MUST_NOT_EXCEED_CREDITS"},
	{AccountFlagCreditsMustNotExceedDebits, "CREDITS_MUST_NOT_EXCEED_DEBITS"},
	{AccountFlagHistory, "HISTORY"},
	{AccountFlagImported, "IMPORTED"},
	{AccountFlagClosed, "CLOSED"},
}

// Names returns the display names of all set flags, in bit order.
func (f AccountFlags) Names() []string {
	var names []string
	for _, e := range accountFlagNames {
		if f&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

// Account is a read-only snapshot of a ledger account.
// Amounts are 128-bit unsigned quantities transmitted as base-10 digit
// strings; they exceed the safe native integer range and must go through
// arbitrary-precision arithmetic for any subtraction or comparison.
type Account struct {
	ID             string       `json:"id"`
	DebitsPending  string       `json:"debits_pending"`
	DebitsPosted   string       `json:"debits_posted"`
	CreditsPending string       `json:"credits_pending"`
	CreditsPosted  string       `json:"credits_posted"`
	UserData128    string       `json:"user_data_128"`
	UserData64     uint64       `json:"user_data_64"`
	UserData32     uint32       `json:"user_data_32"`
	Ledger         uint32       `json:"ledger"`
	Code           uint16       `json:"code"`
	Flags          AccountFlags `json:"flags"`
	Timestamp      uint64       `json:"timestamp"` // nanoseconds since epoch, 0 = not set
}

// HasHistory reports whether balance history recording is enabled.
func (a *Account) HasHistory() bool {
	return a.Flags&AccountFlagHistory != 0
}

// AccountsPage is one page of accounts plus the pagination cursor.
// A present NextTimestamp signals more rows exist; its absence is the
// sole end-of-result signal. The cursor is opaque to renderers beyond
// pass-through into the next fetch.
type AccountsPage struct {
	Accounts      []Account `json:"accounts"`
	NextTimestamp *uint64   `json:"next_timestamp,omitempty"`
}
