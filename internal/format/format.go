// Package format converts wire-level ledger primitive encodings into
// human-readable display strings. All functions are total: well-formed
// input never fails, and missing or zero input degrades to a sentinel
// string rather than an error.
package format

import (
	"strings"
	"time"

	"ledger-explorer/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Missing is the sentinel rendered for unset ids and timestamps.
const Missing = "-"

// FormatID returns a fixed-width shortened display of a hex id: the first
// 8 characters, an ellipsis, and the last 8. Ids of 16 characters or fewer
// are returned unchanged. The all-zero sentinel and empty input render as
// Missing.
func FormatID(id string) string {
	if id == "" || id == domain.ZeroID {
		return Missing
	}
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "…" + id[len(id)-8:]
}

// FormatIDFull returns the id unchanged, or Missing for the sentinel.
func FormatIDFull(id string) string {
	if id == "" || id == domain.ZeroID {
		return Missing
	}
	return id
}

// FormatAmount inserts a grouping separator every three digits from the
// right of a base-10 digit string. Empty input and "0" render as "0".
// Only digit runs are grouped; a leading sign is left untouched.
func FormatAmount(amount string) string {
	if amount == "" || amount == "0" {
		return "0"
	}
	return groupDigits(amount)
}

// groupDigits walks the string right to left, inserting a comma after
// every third consecutive digit. The run counter resets on any non-digit,
// so signs and other separators are never displaced.
func groupDigits(s string) string {
	out := make([]byte, 0, len(s)+len(s)/3)
	run := 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c >= '0' && c <= '9' {
			if run > 0 && run%3 == 0 {
				out = append(out, ',')
			}
			run++
		} else {
			run = 0
		}
		out = append(out, c)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// FormatTimestamp renders a nanosecond timestamp as "2006-01-02 15:04:05"
// in UTC. The nanosecond remainder below one millisecond is discarded;
// this down-conversion is display-only. Zero renders as Missing.
func FormatTimestamp(ns uint64) string {
	if ns == 0 {
		return Missing
	}
	ms := ns / 1_000_000
	return time.UnixMilli(int64(ms)).UTC().Format("2006-01-02 15:04:05")
}

// FormatTimestampISO renders a nanosecond timestamp as an ISO-8601 string
// with millisecond precision. Zero renders as Missing.
func FormatTimestampISO(ns uint64) string {
	if ns == 0 {
		return Missing
	}
	ms := ns / 1_000_000
	return time.UnixMilli(int64(ms)).UTC().Format("2006-01-02T15:04:05.000Z")
}

// FormatAccountFlags renders the set account flags joined with ", ",
// or "none" when no flag is set.
func FormatAccountFlags(flags domain.AccountFlags) string {
	names := flags.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// FormatTransferFlags renders the set transfer flags joined with ", ",
// or "none" when no flag is set.
func FormatTransferFlags(flags domain.TransferFlags) string {
	names := flags.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// NetBalance computes credits_posted - debits_posted exactly. Amounts are
// 128-bit quantities, far past float precision, so the subtraction runs on
// arbitrary-precision decimals. Malformed digit strings count as zero.
func NetBalance(creditsPosted, debitsPosted string) decimal.Decimal {
	return ParseAmount(creditsPosted).Sub(ParseAmount(debitsPosted))
}

// ParseAmount decodes a base-10 digit string into an exact decimal.
// Empty or malformed input counts as zero.
func ParseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// FormatBalance renders a signed exact balance with digit grouping,
// prefixing "-" for negative values. Zero carries no sign.
func FormatBalance(balance decimal.Decimal) string {
	grouped := groupDigits(balance.Abs().String())
	if balance.Sign() < 0 {
		return "-" + grouped
	}
	return grouped
}
