package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    MenuItem
		wantErr string
	}{
		{
			name: "valid",
			item: MenuItem{Name: " Samosa ", Description: "Crispy pastry", Price: 1.5, Category: CategoryAppetizer},
		},
		{
			name:    "missing name",
			item:    MenuItem{Description: "d", Price: 1, Category: CategoryDessert},
			wantErr: "name",
		},
		{
			name:    "missing description",
			item:    MenuItem{Name: "n", Price: 1, Category: CategoryDessert},
			wantErr: "description",
		},
		{
			name:    "negative price",
			item:    MenuItem{Name: "n", Description: "d", Price: -0.01, Category: CategoryDessert},
			wantErr: "price",
		},
		{
			name:    "unknown category",
			item:    MenuItem{Name: "n", Description: "d", Price: 1, Category: "Soup"},
			wantErr: "category",
		},
		{
			name: "free item",
			item: MenuItem{Name: "Water", Description: "Tap", Price: 0, Category: CategoryBeverage},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantErr, ve.Field)
		})
	}
}

func TestMenuItemValidateTrimsName(t *testing.T) {
	item := MenuItem{Name: "  Kulfi ", Description: "Ice cream", Price: 2.75, Category: CategoryDessert}
	require.NoError(t, item.Validate())
	assert.Equal(t, "Kulfi", item.Name)
}

func TestMenuItemUpdateValidate(t *testing.T) {
	neg := -1.0
	empty := " "
	bad := Category("Soup")
	good := CategorySpecial

	assert.True(t, MenuItemUpdate{}.Empty())
	assert.Error(t, (&MenuItemUpdate{Price: &neg}).Validate())
	assert.Error(t, (&MenuItemUpdate{Name: &empty}).Validate())
	assert.Error(t, (&MenuItemUpdate{Category: &bad}).Validate())
	assert.NoError(t, (&MenuItemUpdate{Category: &good}).Validate())
}

func TestTransitionPolicy(t *testing.T) {
	assert.True(t, Permissive.AllowOrder(OrderCompleted, OrderNew))
	assert.True(t, Permissive.AllowOrder(OrderNew, OrderCompleted))
	assert.Nil(t, Permissive.OrderSources(OrderCompleted))

	assert.True(t, Strict.AllowOrder(OrderNew, OrderPreparing))
	assert.True(t, Strict.AllowOrder(OrderPreparing, OrderCompleted))
	assert.True(t, Strict.AllowOrder(OrderCompleted, OrderCompleted))
	assert.False(t, Strict.AllowOrder(OrderNew, OrderCompleted))
	assert.False(t, Strict.AllowOrder(OrderCompleted, OrderNew))

	assert.True(t, Strict.AllowReservation(ReservationPending, ReservationCancelled))
	assert.True(t, Strict.AllowReservation(ReservationConfirmed, ReservationCancelled))
	assert.False(t, Strict.AllowReservation(ReservationCancelled, ReservationConfirmed))
	assert.ElementsMatch(t,
		[]ReservationStatus{ReservationCancelled, ReservationPending, ReservationConfirmed},
		Strict.ReservationSources(ReservationCancelled))

	assert.Equal(t, Strict, ParseTransitionPolicy("strict"))
	assert.Equal(t, Permissive, ParseTransitionPolicy(""))
	assert.Equal(t, Permissive, ParseTransitionPolicy("bogus"))
}

func TestOrderValidate(t *testing.T) {
	empty := Order{Status: OrderNew}
	assert.NoError(t, empty.Validate(), "orders without items are accepted")

	bad := Order{Status: OrderNew, Items: []OrderItem{{ItemID: primitive.NewObjectID(), Quantity: 0}}}
	var ve *ValidationError
	require.ErrorAs(t, bad.Validate(), &ve)
	assert.Equal(t, "items[0].quantity", ve.Field)

	neg := Order{Status: OrderNew, TotalAmount: -1}
	assert.Error(t, neg.Validate())
}

func TestParseReservationDate(t *testing.T) {
	d, err := ParseReservationDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseReservationDate("2025-03-14T19:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseReservationDate("next friday")
	assert.True(t, IsValidationError(err))
}

func TestParseOwnerRef(t *testing.T) {
	id := primitive.NewObjectID()
	ref := ParseOwnerRef(id.Hex())
	require.NotNil(t, ref)
	assert.Equal(t, id, *ref)

	assert.Nil(t, ParseOwnerRef(""))
	assert.Nil(t, ParseOwnerRef("guest"))
}
