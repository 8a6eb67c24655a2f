package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/journal"
)

type LineRequest struct {
	Account     string          `json:"account"`
	AccountType account.Type    `json:"account_type,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Category    string          `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	Vendor      string          `json:"vendor,omitempty"`
	Funder      string          `json:"funder,omitempty"`
}

// CreateRequest is the JSON body of a journal creation. Statement ingestion
// embeds the same shape.
type CreateRequest struct {
	Date               string        `json:"date"`
	Memo               string        `json:"memo"`
	Source             string        `json:"source,omitempty"`
	Type               string        `json:"type,omitempty"`
	AutoCreateAccounts bool          `json:"auto_create_accounts"`
	Lines              []LineRequest `json:"lines"`
}

func (req *CreateRequest) Params(createdBy string) (journal.CreateParams, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return journal.CreateParams{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	lines := make([]journal.LineParams, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = journal.LineParams{
			Account:     l.Account,
			AccountType: l.AccountType,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Category:    l.Category,
			Location:    l.Location,
			Vendor:      l.Vendor,
			Funder:      l.Funder,
		}
	}

	return journal.CreateParams{
		Date:               date,
		Memo:               req.Memo,
		Source:             req.Source,
		Type:               req.Type,
		CreatedBy:          createdBy,
		Lines:              lines,
		AutoCreateAccounts: req.AutoCreateAccounts,
	}, nil
}
