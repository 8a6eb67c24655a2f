package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/account"
)

type accountResponse struct {
	ID              uuid.UUID    `json:"id"`
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	Type            account.Type `json:"type"`
	ParentID        *uuid.UUID   `json:"parent_id,omitempty"`
	IsBankAccount   bool         `json:"is_bank_account"`
	IsCreditCard    bool         `json:"is_credit_card"`
	IsCustom        bool         `json:"is_custom"`
	StartingBalance *string      `json:"starting_balance,omitempty"`
	BalanceDate     *string      `json:"balance_date,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

type nodeResponse struct {
	accountResponse
	Children []nodeResponse `json:"children"`
}

func toResponse(a *account.Account) accountResponse {
	resp := accountResponse{
		ID:            a.ID,
		Code:          a.Code,
		Name:          a.Name,
		Type:          a.Type,
		ParentID:      a.ParentID,
		IsBankAccount: a.IsBankAccount,
		IsCreditCard:  a.IsCreditCard(),
		IsCustom:      a.IsCustom,
		CreatedAt:     a.CreatedAt,
	}

	if a.StartingBalance != nil {
		resp.StartingBalance = new(a.StartingBalance.StringFixed(2))
	}

	if a.BalanceDate != nil {
		resp.BalanceDate = new(a.BalanceDate.Format(time.DateOnly))
	}

	return resp
}

func toResponseList(accounts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	return resp
}

func toNodeList(nodes []*account.Node) []nodeResponse {
	resp := make([]nodeResponse, len(nodes))
	for i, n := range nodes {
		resp[i] = nodeResponse{
			accountResponse: toResponse(n.Account),
			Children:        toNodeList(n.Children),
		}
	}

	return resp
}
