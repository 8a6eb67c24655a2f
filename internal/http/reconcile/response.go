package reconcile

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/matching"
)

type sessionResponse struct {
	ID                   uuid.UUID              `json:"id"`
	BankAccountID        uuid.UUID              `json:"bank_account_id"`
	StartDate            string                 `json:"start_date"`
	EndDate              string                 `json:"end_date"`
	BankStatementBalance string                 `json:"bank_statement_balance"`
	Status               matching.SessionStatus `json:"status"`
	CreatedAt            time.Time              `json:"created_at"`
}

type sessionDetailResponse struct {
	sessionResponse
	UnmatchedLedger []bankTxResponse `json:"unmatched_ledger"`
}

type bankTxResponse struct {
	ID              uuid.UUID          `json:"id"`
	BankAccountID   uuid.UUID          `json:"bank_account_id"`
	JournalID       *uuid.UUID         `json:"journal_id,omitempty"`
	JournalLineID   *uuid.UUID         `json:"journal_line_id,omitempty"`
	TransactionDate string             `json:"transaction_date"`
	Description     string             `json:"description"`
	Amount          string             `json:"amount"`
	Type            matching.Type      `json:"type"`
	Status          matching.Status    `json:"status"`
	MatchType       matching.MatchType `json:"match_type,omitempty"`
}

type feedRowResponse struct {
	Date        string        `json:"date"`
	Amount      string        `json:"amount"`
	Type        matching.Type `json:"type"`
	Description string        `json:"description"`
}

type pairResponse struct {
	Feed        feedRowResponse    `json:"feed"`
	Transaction bankTxResponse     `json:"transaction"`
	MatchType   matching.MatchType `json:"match_type"`
}

type reconcileResponse struct {
	SessionID       uuid.UUID         `json:"session_id"`
	Matched         []pairResponse    `json:"matched"`
	UnmatchedFeed   []feedRowResponse `json:"unmatched_feed"`
	UnmatchedLedger []bankTxResponse  `json:"unmatched_ledger"`
}

func toSessionResponse(s *matching.Session) sessionResponse {
	return sessionResponse{
		ID:                   s.ID,
		BankAccountID:        s.BankAccountID,
		StartDate:            s.StartDate.Format(time.DateOnly),
		EndDate:              s.EndDate.Format(time.DateOnly),
		BankStatementBalance: s.BankStatementBalance.StringFixed(2),
		Status:               s.Status,
		CreatedAt:            s.CreatedAt,
	}
}

func toBankTxResponse(bt *matching.BankTransaction) bankTxResponse {
	return bankTxResponse{
		ID:              bt.ID,
		BankAccountID:   bt.BankAccountID,
		JournalID:       bt.JournalID,
		JournalLineID:   bt.JournalLineID,
		TransactionDate: bt.TransactionDate.Format(time.DateOnly),
		Description:     bt.Description,
		Amount:          bt.Amount.StringFixed(2),
		Type:            bt.Type,
		Status:          bt.Status,
		MatchType:       bt.MatchType,
	}
}

func toBankTxList(txs []*matching.BankTransaction) []bankTxResponse {
	resp := make([]bankTxResponse, len(txs))
	for i, bt := range txs {
		resp[i] = toBankTxResponse(bt)
	}

	return resp
}

func toFeedRowResponse(r matching.FeedRow) feedRowResponse {
	return feedRowResponse{
		Date:        r.Date.Format(time.DateOnly),
		Amount:      r.Amount.StringFixed(2),
		Type:        r.Type,
		Description: r.Description,
	}
}

func toReconcileResponse(res *matching.ReconcileResult) reconcileResponse {
	resp := reconcileResponse{
		SessionID:       res.Session.ID,
		Matched:         make([]pairResponse, len(res.Pairs)),
		UnmatchedFeed:   make([]feedRowResponse, len(res.UnmatchedFeed)),
		UnmatchedLedger: toBankTxList(res.UnmatchedLedger),
	}

	for i, p := range res.Pairs {
		resp.Matched[i] = pairResponse{
			Feed:        toFeedRowResponse(p.Feed),
			Transaction: toBankTxResponse(p.Transaction),
			MatchType:   p.MatchType,
		}
	}

	for i, r := range res.UnmatchedFeed {
		resp.UnmatchedFeed[i] = toFeedRowResponse(r)
	}

	return resp
}
