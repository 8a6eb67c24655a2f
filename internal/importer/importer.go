package importer

import (
	"io"

	"github.com/MrJamesThe3rd/tally/internal/matching"
)

// Bank names a supported export format.
type Bank string

const (
	BankCGD Bank = "cgd"
)

// Parser turns one bank's CSV export into bank-feed rows.
type Parser interface {
	Parse(r io.Reader) ([]matching.FeedRow, error)
}
