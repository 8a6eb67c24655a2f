package journal_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalapi "github.com/MrJamesThe3rd/tally/internal/http/journal"
)

func TestCreateRequest_Params(t *testing.T) {
	body := `{
		"date": "2024-03-01",
		"memo": "Rent",
		"auto_create_accounts": true,
		"lines": [
			{"account": "6100 Rent", "debit": "1000.00"},
			{"account": "1010 Checking", "credit": 1000}
		]
	}`

	var req journalapi.CreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	params, err := req.Params("u1")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), params.Date)
	assert.Equal(t, "u1", params.CreatedBy)
	assert.True(t, params.AutoCreateAccounts)
	require.Len(t, params.Lines, 2)
	assert.Equal(t, "1000.00", params.Lines[0].Debit.StringFixed(2))
	assert.True(t, params.Lines[0].Credit.IsZero())
	assert.Equal(t, "1000.00", params.Lines[1].Credit.StringFixed(2))
}

func TestCreateRequest_ParamsBadDate(t *testing.T) {
	req := journalapi.CreateRequest{Date: "01/03/2024"}

	_, err := req.Params("u1")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}
