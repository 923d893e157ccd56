package account_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("valid principal", func(t *testing.T) {
		p, err := account.NewPrincipal(7, account.Customer)
		require.NoError(t, err)
		require.NoError(t, p.Validate())

		assert.Equal(t, int64(7), p.UserID())
		assert.Equal(t, account.Customer, p.Role())
		assert.True(t, p.IsCustomer())
		assert.False(t, p.IsDriver())
		assert.False(t, p.IsAdmin())
	})

	t.Run("non-positive user id is rejected", func(t *testing.T) {
		_, err := account.NewPrincipal(0, account.Admin)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewPrincipal(-3, account.Admin)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := account.NewPrincipal(1, account.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrincipal_Validate(t *testing.T) {
	t.Run("zero value principal fails validation", func(t *testing.T) {
		var p account.Principal
		require.ErrorIs(t, p.Validate(), account.ErrPrincipalIsNotConstructed)
	})
}

func TestPrincipal_RolePredicates(t *testing.T) {
	admin, err := account.NewPrincipal(1, account.Admin)
	require.NoError(t, err)
	driver, err := account.NewPrincipal(2, account.Driver)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsCustomer())
	assert.True(t, driver.IsDriver())
	assert.False(t, driver.IsAdmin())
}
