package domain

import "sort"

// BalanceSnapshot is one historical point of an account's pending/posted
// debit and credit totals. Snapshots belong to exactly one account; the
// ledger service does not guarantee their ordering, consumers must impose
// it before chronological use.
type BalanceSnapshot struct {
	DebitsPending  string `json:"debits_pending"`
	DebitsPosted   string `json:"debits_posted"`
	CreditsPending string `json:"credits_pending"`
	CreditsPosted  string `json:"credits_posted"`
	Timestamp      uint64 `json:"timestamp"`
}

// BalanceHistory is the balance-history collection for one account.
type BalanceHistory struct {
	Balances []BalanceSnapshot `json:"balances"`
}

// SortBalancesByTimestamp orders snapshots ascending by timestamp in place.
func SortBalancesByTimestamp(balances []BalanceSnapshot) {
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Timestamp < balances[j].Timestamp
	})
}
