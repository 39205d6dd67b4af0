package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/internal/db"
)

type recordingOrderEvents struct {
	created       []*model.Order
	statusChanged []*model.Order
}

func (r *recordingOrderEvents) OrderCreated(order *model.Order) {
	r.created = append(r.created, order)
}

func (r *recordingOrderEvents) OrderStatusChanged(order *model.Order) {
	r.statusChanged = append(r.statusChanged, order)
}

func setupOrderServiceTest(t *testing.T) (OrderService, *recordingOrderEvents) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	events := &recordingOrderEvents{}
	svc := NewOrderService(repository.NewOrderRepository(testDB), events)
	return svc, events
}

func filledCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore("checkout-test", cart.NewMemorySnapshotStore())
	require.NoError(t, store.AddItem(cart.ProductRef{
		ID:        "1",
		Name:      "Fauteuil hydraulique",
		NameAr:    "كرسي هيدروليكي",
		UnitPrice: 45000,
	}, 1))
	require.NoError(t, store.AddItem(cart.ProductRef{
		ID:        "2",
		Name:      "Miroir LED",
		NameAr:    "مرآة",
		UnitPrice: 12000,
	}, 2))
	return store
}

func validCheckout() CheckoutInput {
	return CheckoutInput{
		CustomerName: "Amina B.",
		Phone:        "0550 12 34 56",
		Wilaya:       "16 - Alger",
		DeliveryType: model.DeliveryHome,
		Address:      "Rue Didouche Mourad, Alger",
	}
}

func TestOrderService_Checkout(t *testing.T) {
	svc, events := setupOrderServiceTest(t)
	store := filledCart(t)

	order, err := svc.Checkout(validCheckout(), store)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "0550123456", order.Phone)
	assert.Equal(t, 69000.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "1", order.Items[0].ProductID)
	assert.Equal(t, "كرسي هيدروليكي", order.Items[0].NameAr)
	assert.Equal(t, 2, order.Items[1].Quantity)

	// The cart is emptied once the order is stored
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalItems())

	require.Len(t, events.created, 1)
	assert.Equal(t, order.ID, events.created[0].ID)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)
	store := cart.NewStore("empty", cart.NewMemorySnapshotStore())

	_, err := svc.Checkout(validCheckout(), store)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestOrderService_Checkout_Validation(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	tests := []struct {
		name    string
		mutate  func(*CheckoutInput)
		wantErr error
	}{
		{"missing name", func(in *CheckoutInput) { in.CustomerName = "  " }, ErrMissingCustomerInfo},
		{"missing phone", func(in *CheckoutInput) { in.Phone = "" }, ErrMissingCustomerInfo},
		{"bad phone", func(in *CheckoutInput) { in.Phone = "12345" }, ErrInvalidPhone},
		{"unknown wilaya", func(in *CheckoutInput) { in.Wilaya = "99 - Nulle Part" }, ErrInvalidWilaya},
		{"bad delivery type", func(in *CheckoutInput) { in.DeliveryType = "pigeon" }, ErrInvalidDeliveryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := filledCart(t)
			input := validCheckout()
			tt.mutate(&input)

			_, err := svc.Checkout(input, store)
			assert.ErrorIs(t, err, tt.wantErr)

			// A rejected checkout leaves the cart untouched
			assert.Len(t, store.Items(), 2)
		})
	}
}

func TestOrderService_Checkout_StopDesk(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)
	store := filledCart(t)

	input := validCheckout()
	input.DeliveryType = model.DeliveryStopDesk
	input.Address = ""

	order, err := svc.Checkout(input, store)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryStopDesk, order.DeliveryType)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	svc, events := setupOrderServiceTest(t)
	store := filledCart(t)

	order, err := svc.Checkout(validCheckout(), store)
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(order.ID, model.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, updated.Status)
	require.Len(t, events.statusChanged, 1)
	assert.Equal(t, order.ID, events.statusChanged[0].ID)
}

func TestOrderService_UpdateOrderStatus_Invalid(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	_, err := svc.UpdateOrderStatus(1, "teleported")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	_, err := svc.UpdateOrderStatus(9999, model.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_GetOrders(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	first, err := svc.Checkout(validCheckout(), filledCart(t))
	require.NoError(t, err)
	second, err := svc.Checkout(validCheckout(), filledCart(t))
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(second.ID, model.OrderStatusShipped)
	require.NoError(t, err)

	all, err := svc.GetOrders("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.GetOrders(model.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	_, err = svc.GetOrders("teleported")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}
