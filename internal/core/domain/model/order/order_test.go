package order_test

import (
	"testing"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, quantity int, price string) order.Item {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("creates valid line", func(t *testing.T) {
		item := mustItem(t, 3, "1500.00")

		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "4500.00", item.Subtotal().String())
		require.NoError(t, item.Validate())
	})

	t.Run("rejects zero and negative quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("100.00")

		for _, quantity := range []int{0, -1, 100} {
			_, err := order.NewItem(kernel.NewUUID(), quantity, price)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("rejects zero-value menu reference", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("100.00")

		_, err := order.NewItem(kernel.UUID{}, 1, price)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending with computed total", func(t *testing.T) {
		items := []order.Item{mustItem(t, 2, "1000.00"), mustItem(t, 1, "500.50")}

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Rue des Manguiers, Cotonou", time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "2500.50", o.Total().String())
		assert.Nil(t, o.Courier())
		assert.Len(t, o.Items(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "somewhere", time.Now())

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects zero-value identifiers", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1, "100.00")}

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), items, "somewhere", time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, items, "somewhere", time.Now())
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("keeps backend-reported total and status verbatim", func(t *testing.T) {
		total, _ := kernel.MoneyFromString("9999.99")

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1, "100.00")},
			total, order.EnRoute, "5 Avenue Steinmetz", nil, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, o.Status())
		assert.True(t, o.Total().IsEqual(total))
	})

	t.Run("tolerates unknown status codes", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			kernel.ZeroMoney(), "awaiting_pickup", "", nil, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "awaiting_pickup", o.Status().DisplayLabel())
		assert.Empty(t, o.Status().AllowedNext(order.RoleSuperAdmin))
	})

	t.Run("validates courier reference when present", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			kernel.ZeroMoney(), order.EnRoute, "", &zero, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	restore := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1, "100.00")},
			kernel.ZeroMoney(), status, "", nil, time.Now(),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("applies allowed transition", func(t *testing.T) {
		o := restore(t, order.Paid)

		require.NoError(t, o.ChangeStatus(order.InPreparation, order.RoleAdmin))
		assert.Equal(t, order.InPreparation, o.Status())
	})

	t.Run("rejects disallowed transition without mutating", func(t *testing.T) {
		o := restore(t, order.Pending)

		err := o.ChangeStatus(order.EnRoute, order.RoleAdmin)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects any transition out of unknown status", func(t *testing.T) {
		o := restore(t, "awaiting_pickup")

		require.Error(t, o.ChangeStatus(order.Delivered, order.RoleSuperAdmin))
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("courier claims a ready order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1, "100.00")},
			kernel.ZeroMoney(), order.Ready, "", nil, time.Now(),
		)
		require.NoError(t, err)

		courierID := kernel.NewUUID()
		require.NoError(t, o.Claim(courierID, order.RoleCourier))

		assert.Equal(t, order.EnRoute, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("cannot claim an order that is not ready", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1, "100.00")},
			kernel.ZeroMoney(), order.InPreparation, "", nil, time.Now(),
		)
		require.NoError(t, err)

		err = o.Claim(kernel.NewUUID(), order.RoleCourier)

		require.Error(t, err)
		assert.Nil(t, o.Courier())
		assert.Equal(t, order.InPreparation, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value fails", func(t *testing.T) {
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}
