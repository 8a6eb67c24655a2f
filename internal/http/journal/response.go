package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/journal"
)

type lineResponse struct {
	ID                uuid.UUID  `json:"id"`
	LineNumber        int        `json:"line_number"`
	AccountID         uuid.UUID  `json:"account_id"`
	Description       string     `json:"description"`
	Debit             string     `json:"debit"`
	Credit            string     `json:"credit"`
	Category          string     `json:"category,omitempty"`
	Location          string     `json:"location,omitempty"`
	Vendor            string     `json:"vendor,omitempty"`
	Funder            string     `json:"funder,omitempty"`
	BankTransactionID *uuid.UUID `json:"bank_transaction_id,omitempty"`
}

type Response struct {
	ID          uuid.UUID      `json:"id"`
	Date        string         `json:"date"`
	Memo        string         `json:"memo"`
	Source      string         `json:"source"`
	Type        string         `json:"type"`
	State       journal.State  `json:"state"`
	PostedAt    *time.Time     `json:"posted_at,omitempty"`
	PostedBy    string         `json:"posted_by,omitempty"`
	CreatedBy   string         `json:"created_by"`
	TotalDebit  string         `json:"total_debit"`
	TotalCredit string         `json:"total_credit"`
	CreatedAt   time.Time      `json:"created_at"`
	Lines       []lineResponse `json:"lines"`
}

// ToResponse renders j for API clients. Amounts are fixed to two decimals.
func ToResponse(j *journal.Journal) Response {
	debit, credit := j.Totals()

	resp := Response{
		ID:          j.ID,
		Date:        j.Date.Format(time.DateOnly),
		Memo:        j.Memo,
		Source:      j.Source,
		Type:        j.Type,
		State:       j.State(),
		PostedAt:    j.PostedAt,
		PostedBy:    j.PostedBy,
		CreatedBy:   j.CreatedBy,
		TotalDebit:  debit.StringFixed(2),
		TotalCredit: credit.StringFixed(2),
		CreatedAt:   j.CreatedAt,
		Lines:       make([]lineResponse, len(j.Lines)),
	}

	for i, l := range j.Lines {
		resp.Lines[i] = lineResponse{
			ID:                l.ID,
			LineNumber:        l.LineNumber,
			AccountID:         l.AccountID,
			Description:       l.Description,
			Debit:             l.Debit.StringFixed(2),
			Credit:            l.Credit.StringFixed(2),
			Category:          l.Category,
			Location:          l.Location,
			Vendor:            l.Vendor,
			Funder:            l.Funder,
			BankTransactionID: l.BankTransactionID,
		}
	}

	return resp
}

func toResponseList(journals []*journal.Journal) []Response {
	resp := make([]Response, len(journals))
	for i, j := range journals {
		resp[i] = ToResponse(j)
	}

	return resp
}

type skipResponse struct {
	ID     uuid.UUID          `json:"id"`
	Reason journal.SkipReason `json:"reason"`
}

type postResponse struct {
	PostedCount int            `json:"posted_count"`
	Posted      []uuid.UUID    `json:"posted"`
	Skipped     []skipResponse `json:"skipped"`
	Incomplete  bool           `json:"incomplete,omitempty"`
}

func toPostResponse(res *journal.PostResult) postResponse {
	resp := postResponse{
		PostedCount: res.PostedCount(),
		Posted:      res.Posted,
		Skipped:     make([]skipResponse, len(res.Skipped)),
	}

	if resp.Posted == nil {
		resp.Posted = []uuid.UUID{}
	}

	for i, s := range res.Skipped {
		resp.Skipped[i] = skipResponse{ID: s.ID, Reason: s.Reason}
	}

	return resp
}
