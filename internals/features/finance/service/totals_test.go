package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	assert.Equal(t, int64(0), got.IncomeCents)
	assert.Equal(t, int64(0), got.ExpenseCents)
	assert.Equal(t, int64(0), got.BalanceCents)
}

func TestComputeTotalsBalance(t *testing.T) {
	entries := []Entry{
		{Type: "Receita", AmountCents: 150000},
		{Type: "Receita", AmountCents: 32550},
		{Type: "Despesa", AmountCents: 48000},
		{Type: "Despesa", AmountCents: 1999},
	}
	got := ComputeTotals(entries)
	assert.Equal(t, int64(182550), got.IncomeCents)
	assert.Equal(t, int64(49999), got.ExpenseCents)
	assert.Equal(t, got.IncomeCents-got.ExpenseCents, got.BalanceCents)
	assert.Equal(t, int64(132551), got.BalanceCents)
}

func TestComputeTotalsIgnoresUnknownType(t *testing.T) {
	entries := []Entry{
		{Type: "Receita", AmountCents: 1000},
		{Type: "Transferência", AmountCents: 999999},
	}
	got := ComputeTotals(entries)
	assert.Equal(t, int64(1000), got.IncomeCents)
	assert.Equal(t, int64(0), got.ExpenseCents)
	assert.Equal(t, int64(1000), got.BalanceCents)
}

func TestComputeTotalsNegativeBalance(t *testing.T) {
	entries := []Entry{
		{Type: "Receita", AmountCents: 5000},
		{Type: "Despesa", AmountCents: 7500},
	}
	got := ComputeTotals(entries)
	assert.Equal(t, int64(-2500), got.BalanceCents)
}
