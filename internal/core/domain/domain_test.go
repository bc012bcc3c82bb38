package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountFlags_Names(t *testing.T) {
	assert.Nil(t, AccountFlags(0).Names())
	assert.Equal(t, []string{"LINKED"}, AccountFlagLinked.Names())
	assert.Equal(t,
		[]string{"LINKED", "HISTORY"},
		(AccountFlagLinked | AccountFlagHistory).Names())
	assert.Equal(t,
		[]string{"LINKED", "DEBITS_MUST_NOT_EXCEED_CREDITS", "CREDITS_MUST_NOT_EXCEED_DEBITS", "HISTORY", "IMPORTED", "CLOSED"},
		AccountFlags(0b111111).Names())
}

func TestTransferFlags_Names(t *testing.T) {
	assert.Nil(t, TransferFlags(0).Names())
	assert.Equal(t, []string{"PENDING"}, TransferFlagPending.Names())
	// IMPORTED sits at bit 8, past the first byte.
	assert.Equal(t, []string{"IMPORTED"}, TransferFlags(1<<8).Names())
	assert.Equal(t,
		[]string{"LINKED", "POST_PENDING", "CLOSING_CREDIT"},
		(TransferFlagLinked | TransferFlagPostPending | TransferFlagClosingCredit).Names())
}

func TestAccount_HasHistory(t *testing.T) {
	a := Account{Flags: AccountFlagHistory | AccountFlagLinked}
	assert.True(t, a.HasHistory())

	b := Account{Flags: AccountFlagLinked}
	assert.False(t, b.HasHistory())
}

func TestSortBalancesByTimestamp(t *testing.T) {
	balances := []BalanceSnapshot{
		{Timestamp: 300},
		{Timestamp: 100},
		{Timestamp: 200},
	}
	SortBalancesByTimestamp(balances)
	assert.Equal(t, uint64(100), balances[0].Timestamp)
	assert.Equal(t, uint64(200), balances[1].Timestamp)
	assert.Equal(t, uint64(300), balances[2].Timestamp)
}
