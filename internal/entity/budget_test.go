package entity

import (
	"testing"

	"parivar/internal/api/budget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetValidate(t *testing.T) {
	for _, period := range []string{"daily", "weekly", "monthly"} {
		bgt := Budget{LimitAmount: 1000, Period: period}
		assert.NoError(t, bgt.Validate(), period)
	}
}

func TestBudgetValidateRejectsBadLimit(t *testing.T) {
	bgt := Budget{LimitAmount: 0, Period: "monthly"}
	require.ErrorIs(t, bgt.Validate(), budget.ErrInvalidLimit)
}

func TestBudgetValidateRejectsBadPeriod(t *testing.T) {
	bgt := Budget{LimitAmount: 1000, Period: "yearly"}
	require.ErrorIs(t, bgt.Validate(), budget.ErrInvalidPeriod)
}
