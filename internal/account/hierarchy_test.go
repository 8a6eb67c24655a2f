package account_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/account"
)

func TestBuildHierarchy(t *testing.T) {
	assets := &account.Account{ID: uuid.New(), Code: "1000", Name: "Assets"}
	checking := &account.Account{ID: uuid.New(), Code: "1010", Name: "Checking", ParentID: &assets.ID}
	savings := &account.Account{ID: uuid.New(), Code: "1020", Name: "Savings", ParentID: &assets.ID}
	missing := uuid.New()
	orphan := &account.Account{ID: uuid.New(), Code: "6100", Name: "Rent", ParentID: &missing}

	// Child listed before its parent still attaches.
	roots := account.BuildHierarchy([]*account.Account{checking, assets, savings, orphan})

	require.Len(t, roots, 2)
	assert.Equal(t, "1000", roots[0].Account.Code)
	assert.Equal(t, "6100", roots[1].Account.Code)

	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "1010", roots[0].Children[0].Account.Code)
	assert.Equal(t, "1020", roots[0].Children[1].Account.Code)
	assert.Empty(t, roots[1].Children)
}

func TestBuildHierarchy_Empty(t *testing.T) {
	assert.Empty(t, account.BuildHierarchy(nil))
}
