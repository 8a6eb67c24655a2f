package cgd

type amountMode int

const (
	// amountSigned is one column whose sign gives the direction ("-10,00").
	amountSigned amountMode = iota
	// amountSplit is a pair of unsigned debit and credit columns.
	amountSplit
)

// layout is the column set of one CGD export flavour.
type layout struct {
	name       string
	dateCol    string
	descCol    string
	amountMode amountMode
	amountCol  string
	debitCol   string
	creditCol  string
}

func (l *layout) columns() []string {
	if l.amountMode == amountSplit {
		return []string{l.dateCol, l.descCol, l.debitCol, l.creditCol}
	}

	return []string{l.dateCol, l.descCol, l.amountCol}
}

// layouts are tried in order against every row until one matches the header.
// The card layout goes first: its "Data" column is a prefix of the others.
var layouts = []layout{
	{
		name:       "cartão",
		dateCol:    "Data",
		descCol:    "Descrição",
		amountMode: amountSplit,
		debitCol:   "Débito",
		creditCol:  "Crédito",
	},
	{
		name:       "extrato",
		dateCol:    "Data mov.",
		descCol:    "Descrição",
		amountMode: amountSigned,
		amountCol:  "Movimento",
	},
	{
		name:       "conta",
		dateCol:    "Data mov.",
		descCol:    "Descrição",
		amountMode: amountSigned,
		amountCol:  "Montante",
	},
}
