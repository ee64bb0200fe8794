package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vendorpayments-backend/pkg/db/dbtest"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db/models"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
)

func TestFindOrderLoadsItemsAndNormalizesStatus(t *testing.T) {
	client := dbtest.New(t)
	require.NoError(t, client.DB().Create(&models.Order{
		ID:     1001,
		Status: "wc-completed",
		Items: []models.OrderItem{
			{ID: 2, ProductID: 77, Name: "Widget", Quantity: 1},
			{ID: 1, ProductID: 55, Name: "Gadget", Quantity: 3},
		},
	}).Error)

	order, err := NewRepository(client.DB()).FindOrder(context.Background(), 1001)
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusCompleted, order.Status)
	require.Len(t, order.Items, 2)
	require.EqualValues(t, 55, order.Items[0].ProductID)
	require.EqualValues(t, 77, order.Items[1].ProductID)
	require.Equal(t, 3, order.Items[0].Quantity)
}

func TestFindOrderWithoutItems(t *testing.T) {
	client := dbtest.New(t)
	require.NoError(t, client.DB().Create(&models.Order{ID: 5, Status: "processing"}).Error)

	order, err := NewRepository(client.DB()).FindOrder(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusProcessing, order.Status)
	require.Empty(t, order.Items)
}

func TestFindOrderMissing(t *testing.T) {
	lookup := NewRepository(dbtest.New(t).DB())

	for _, id := range []int64{0, -1, 404} {
		order, err := lookup.FindOrder(context.Background(), id)
		require.Nil(t, order)
		require.True(t, IsNotFound(err), "id %d", id)
		require.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	}
}
