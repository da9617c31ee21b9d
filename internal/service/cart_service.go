package service

import (
	"context"
	"fmt"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/events"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/metrics"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

type CartService struct {
	store     *repository.Store
	resolver  *Resolver
	publisher events.Publisher
}

func NewCartService(store *repository.Store, resolver *Resolver, publisher events.Publisher) *CartService {
	return &CartService{store: store, resolver: resolver, publisher: publisher}
}

// Cart is a user's cart with its derived totals.
type Cart struct {
	Items     []entity.CartLine `json:"items"`
	Total     int               `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// AddToCart merges quantity into the user's line for the medicine, creating
// the line when there is none.
func (s *CartService) AddToCart(ctx context.Context, userID, medicineID, quantity int) (entity.CartItem, error) {
	item, merged, err := s.store.AddToCart(userID, medicineID, quantity)
	if err != nil {
		logger.Error().Err(err).Msgf("Error adding medicine %d to cart of user %d", medicineID, userID)
		return entity.CartItem{}, err
	}
	metrics.RecordCartAdd(merged)
	return item, nil
}

// ownedItem fetches a cart line and hides lines that belong to someone else.
func (s *CartService) ownedItem(userID, itemID int) (entity.CartItem, error) {
	item, err := s.store.GetCartItem(itemID)
	if err != nil {
		return entity.CartItem{}, err
	}
	if item.UserID != userID {
		return entity.CartItem{}, fmt.Errorf("cart item %d: %w", itemID, repository.ErrNotFound)
	}
	return item, nil
}

// UpdateQuantity sets the quantity of one of the user's cart lines, clamped to at least 1.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID, quantity int) (entity.CartItem, error) {
	if _, err := s.ownedItem(userID, itemID); err != nil {
		return entity.CartItem{}, err
	}
	return s.store.UpdateCartItemQuantity(itemID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int) error {
	if _, err := s.ownedItem(userID, itemID); err != nil {
		return err
	}
	if !s.store.RemoveCartItem(itemID) {
		return fmt.Errorf("cart item %d: %w", itemID, repository.ErrNotFound)
	}
	return nil
}

// Clear empties the user's cart and returns how many lines were removed.
func (s *CartService) Clear(ctx context.Context, userID int) int {
	removed := s.store.ClearCart(userID)
	if removed > 0 {
		events.Emit(ctx, s.publisher, events.Event{
			Entity:  "cart",
			Action:  events.CartCleared,
			ID:      userID,
			Payload: map[string]int{"userId": userID, "removed": removed},
		})
	}
	return removed
}

func (s *CartService) Cart(userID int) Cart {
	lines := s.resolver.CartWithDetails(userID)
	return Cart{Items: lines, Total: lineTotal(lines), ItemCount: lineCount(lines)}
}

// CartTotal is the sum of quantity * price over the user's cart, in minor units.
func (s *CartService) CartTotal(userID int) int {
	return lineTotal(s.resolver.CartWithDetails(userID))
}

// CartItemCount is the sum of quantities over the user's cart.
func (s *CartService) CartItemCount(userID int) int {
	return lineCount(s.resolver.CartWithDetails(userID))
}

func lineTotal(lines []entity.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

func lineCount(lines []entity.CartLine) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
