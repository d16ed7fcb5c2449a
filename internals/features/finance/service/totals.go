package service

// Entry é a projeção mínima de um lançamento para agregação.
type Entry struct {
	Type        string
	AmountCents int64
}

// Totals agrega lançamentos em centavos.
type Totals struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

// ComputeTotals soma receitas e despesas; saldo = receita - despesa.
// Tipos desconhecidos são ignorados.
func ComputeTotals(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		switch e.Type {
		case "Receita":
			t.IncomeCents += e.AmountCents
		case "Despesa":
			t.ExpenseCents += e.AmountCents
		}
	}
	t.BalanceCents = t.IncomeCents - t.ExpenseCents
	return t
}
