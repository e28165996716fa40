package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/app/repository"
	"github.com/ikkim/udonggeum-storefront/pkg/logger"
)

// CartService runs cart transitions against a visitor's persisted slot.
// Every mutating call loads the slot, applies one transition and commits the
// full line list before returning.
type CartService interface {
	Load(ctx context.Context, visitorID string) (*Cart, error)
	Add(ctx context.Context, visitorID, productID string, qty int) (*Cart, error)
	SetQuantity(ctx context.Context, visitorID string, index, qty int) (*Cart, error)
	Remove(ctx context.Context, visitorID string, index int) (*Cart, error)
	Clear(ctx context.Context, visitorID string) error
}

type cartService struct {
	store    repository.CartStore
	catalog  CatalogService
	slotName string
}

func NewCartService(store repository.CartStore, catalog CatalogService, slotName string) CartService {
	return &cartService{
		store:    store,
		catalog:  catalog,
		slotName: slotName,
	}
}

// SlotKey names the storage slot of one visitor.
func SlotKey(slotName, visitorID string) string {
	return fmt.Sprintf("%s:%s", slotName, visitorID)
}

func (s *cartService) Load(ctx context.Context, visitorID string) (*Cart, error) {
	key := SlotKey(s.slotName, visitorID)

	payload, found, err := s.store.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Cart{}, nil
	}

	cart, err := DecodeCart(payload)
	if err != nil {
		logger.Warn("Discarding malformed cart payload", logger.Fields{
			"slot":  key,
			"error": err.Error(),
		})
		return &Cart{}, nil
	}
	return cart, nil
}

func (s *cartService) Add(ctx context.Context, visitorID, productID string, qty int) (*Cart, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		logger.Warn("Cannot add to cart: product not found", logger.Fields{
			"visitor_id": visitorID,
			"product_id": productID,
		})
		return nil, err
	}

	cart, err := s.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	cart.Add(*product, qty)

	if err := s.commit(ctx, visitorID, cart); err != nil {
		return nil, err
	}

	logger.Info("Item added to cart", logger.Fields{
		"visitor_id": visitorID,
		"product_id": productID,
		"quantity":   clampQuantity(qty),
		"cart_count": cart.TotalQuantity(),
	})
	return cart, nil
}

func (s *cartService) SetQuantity(ctx context.Context, visitorID string, index, qty int) (*Cart, error) {
	cart, err := s.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if err := cart.SetQuantity(index, qty); err != nil {
		logger.Warn("Cart line not found", logger.Fields{
			"visitor_id": visitorID,
			"index":      index,
		})
		return nil, err
	}

	if err := s.commit(ctx, visitorID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Remove(ctx context.Context, visitorID string, index int) (*Cart, error) {
	cart, err := s.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if err := cart.Remove(index); err != nil {
		logger.Warn("Cart line not found for removal", logger.Fields{
			"visitor_id": visitorID,
			"index":      index,
		})
		return nil, err
	}

	if err := s.commit(ctx, visitorID, cart); err != nil {
		return nil, err
	}

	logger.Info("Cart line removed", logger.Fields{
		"visitor_id": visitorID,
		"index":      index,
	})
	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, visitorID string) error {
	if err := s.store.Delete(ctx, SlotKey(s.slotName, visitorID)); err != nil {
		return err
	}
	logger.Info("Cart cleared", logger.Fields{"visitor_id": visitorID})
	return nil
}

// commit writes the whole line list; it runs after every transition.
func (s *cartService) commit(ctx context.Context, visitorID string, cart *Cart) error {
	payload, err := EncodeCart(cart)
	if err != nil {
		return err
	}
	if err := s.store.Write(ctx, SlotKey(s.slotName, visitorID), payload); err != nil {
		logger.Error("Failed to commit cart", err, logger.Fields{
			"visitor_id": visitorID,
		})
		return err
	}
	return nil
}

// EncodeCart serializes the lines as a bare JSON array.
func EncodeCart(cart *Cart) ([]byte, error) {
	lines := cart.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	return json.Marshal(lines)
}

// DecodeCart parses a stored JSON array. Lines without an id are dropped and
// quantities below 1 are raised to 1.
func DecodeCart(payload []byte) (*Cart, error) {
	var lines []model.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, err
	}

	cart := &Cart{}
	for _, l := range lines {
		if l.ID == "" {
			continue
		}
		l.Qty = clampQuantity(l.Qty)
		cart.Lines = append(cart.Lines, l)
	}
	return cart, nil
}
