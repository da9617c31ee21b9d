package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

func newCartService(store *repository.Store, pub *recordingPublisher) *CartService {
	return NewCartService(store, NewResolver(store), pub)
}

func TestAddToCartTwiceMergesAndTotals(t *testing.T) {
	store := newTestStore()
	svc := newCartService(store, &recordingPublisher{})
	ctx := context.Background()
	m := mustMedicine(t, store, "Sertraline (Generic)", 1299)

	first, err := svc.AddToCart(ctx, 1, m.ID, 1)
	require.NoError(t, err)
	second, err := svc.AddToCart(ctx, 1, m.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, 2598, svc.CartTotal(1))
	assert.Equal(t, 2, svc.CartItemCount(1))

	cart := svc.Cart(1)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2598, cart.Total)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestAddToCartUnknownMedicine(t *testing.T) {
	svc := newCartService(newTestStore(), &recordingPublisher{})

	_, err := svc.AddToCart(context.Background(), 1, 404, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateQuantityChecksOwnership(t *testing.T) {
	store := newTestStore()
	svc := newCartService(store, &recordingPublisher{})
	ctx := context.Background()
	m := mustMedicine(t, store, "Bupropion XL", 2450)
	item, err := svc.AddToCart(ctx, 1, m.ID, 1)
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, 2, item.ID, 5)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	updated, err := svc.UpdateQuantity(ctx, 1, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)

	updated, err = svc.UpdateQuantity(ctx, 1, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, 4*2450, svc.CartTotal(1))
}

func TestRemoveItem(t *testing.T) {
	store := newTestStore()
	svc := newCartService(store, &recordingPublisher{})
	ctx := context.Background()
	m := mustMedicine(t, store, "Lithium Carbonate", 1875)
	item, err := svc.AddToCart(ctx, 1, m.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveItem(ctx, 2, item.ID), repository.ErrNotFound)
	require.NoError(t, svc.RemoveItem(ctx, 1, item.ID))
	assert.ErrorIs(t, svc.RemoveItem(ctx, 1, item.ID), repository.ErrNotFound)
	assert.Zero(t, svc.CartItemCount(1))
}

func TestClearPublishesOnlyWhenSomethingWasRemoved(t *testing.T) {
	store := newTestStore()
	pub := &recordingPublisher{}
	svc := newCartService(store, pub)
	ctx := context.Background()
	a := mustMedicine(t, store, "A", 100)
	b := mustMedicine(t, store, "B", 200)

	assert.Zero(t, svc.Clear(ctx, 7))
	assert.Empty(t, pub.keys())

	_, _ = svc.AddToCart(ctx, 7, a.ID, 1)
	_, _ = svc.AddToCart(ctx, 7, b.ID, 1)
	assert.Equal(t, 2, svc.Clear(ctx, 7))
	assert.Equal(t, []string{"cart-cleared-7"}, pub.keys())
	assert.Empty(t, svc.Cart(7).Items)
}

func TestCartTotalSkipsDanglingLines(t *testing.T) {
	store := newTestStore()
	svc := newCartService(store, &recordingPublisher{})
	ctx := context.Background()
	a := mustMedicine(t, store, "A", 100)
	b := mustMedicine(t, store, "B", 200)
	_, _ = svc.AddToCart(ctx, 1, a.ID, 3)
	_, _ = svc.AddToCart(ctx, 1, b.ID, 1)

	store.RemoveMedicine(a.ID)

	assert.Equal(t, 200, svc.CartTotal(1))
	assert.Equal(t, 1, svc.CartItemCount(1))
}
