package attributes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vendorpayments-backend/pkg/db/dbtest"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db/models"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

func TestGetUnsetReturnsEmpty(t *testing.T) {
	store := NewRepository(dbtest.New(t).DB())

	value, err := store.Get(context.Background(), enums.EntityTypeProduct, 10, KeyVendorName)
	require.NoError(t, err)
	require.Equal(t, "", value)
}

func TestSetUpsertsSingleRow(t *testing.T) {
	ctx := context.Background()
	client := dbtest.New(t)
	store := NewRepository(client.DB())

	require.NoError(t, store.Set(ctx, enums.EntityTypeProduct, 10, KeyVendorName, "vendor1"))
	require.NoError(t, store.Set(ctx, enums.EntityTypeProduct, 10, KeyVendorName, "vendor2"))

	value, err := store.Get(ctx, enums.EntityTypeProduct, 10, KeyVendorName)
	require.NoError(t, err)
	require.Equal(t, "vendor2", value)

	var count int64
	require.NoError(t, client.DB().Model(&models.EntityAttribute{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAttributesAreScopedByEntity(t *testing.T) {
	ctx := context.Background()
	store := NewRepository(dbtest.New(t).DB())

	require.NoError(t, store.Set(ctx, enums.EntityTypeOrder, 5, KeyPaymentStatus, "paid"))

	value, err := store.Get(ctx, enums.EntityTypeProduct, 5, KeyPaymentStatus)
	require.NoError(t, err)
	require.Equal(t, "", value)

	value, err = store.Get(ctx, enums.EntityTypeOrder, 6, KeyPaymentStatus)
	require.NoError(t, err)
	require.Equal(t, "", value)

	value, err = store.Get(ctx, enums.EntityTypeOrder, 5, KeyPaymentStatus)
	require.NoError(t, err)
	require.Equal(t, "paid", value)
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	store := NewRepository(dbtest.New(t).DB())

	_, err := store.Get(ctx, "user", 1, KeyVendorName)
	require.Error(t, err)
	require.Error(t, store.Set(ctx, enums.EntityTypeProduct, 1, "", "x"))
}
