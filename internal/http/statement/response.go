package statement

import (
	"time"

	"github.com/google/uuid"

	journalapi "github.com/MrJamesThe3rd/tally/internal/http/journal"
	"github.com/MrJamesThe3rd/tally/internal/statement"
)

type recordResponse struct {
	ID                uuid.UUID `json:"id"`
	AccountID         uuid.UUID `json:"account_id"`
	StatementNumber   string    `json:"statement_number"`
	LastFour          string    `json:"last_four,omitempty"`
	StatementDate     string    `json:"statement_date"`
	IsStartingBalance bool      `json:"is_starting_balance"`
	ProcessedAt       time.Time `json:"processed_at"`
}

type ingestResponse struct {
	Outcome   statement.Outcome    `json:"outcome"`
	AccountID *uuid.UUID           `json:"account_id,omitempty"`
	Record    *recordResponse      `json:"record,omitempty"`
	Journal   *journalapi.Response `json:"journal,omitempty"`
}

func toRecordResponse(r *statement.Record) recordResponse {
	return recordResponse{
		ID:                r.ID,
		AccountID:         r.AccountID,
		StatementNumber:   r.StatementNumber,
		LastFour:          r.LastFour,
		StatementDate:     r.StatementDate.Format(time.DateOnly),
		IsStartingBalance: r.IsStartingBalance,
		ProcessedAt:       r.ProcessedAt,
	}
}

func toIngestResponse(res *statement.IngestResult) ingestResponse {
	resp := ingestResponse{
		Outcome:   res.Outcome,
		AccountID: res.AccountID,
	}

	if res.Record != nil {
		resp.Record = new(toRecordResponse(res.Record))
	}

	if res.Journal != nil {
		resp.Journal = new(journalapi.ToResponse(res.Journal))
	}

	return resp
}
