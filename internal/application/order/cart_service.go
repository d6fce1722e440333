package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
)

const cartKeyPrefix = "cart:"

// MaxCartLines bounds the number of lines a stored cart may hold
const MaxCartLines = 50

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

var (
	// ErrInvalidSession is returned for a malformed cart session id
	ErrInvalidSession = shared.NewDomainError("INVALID_SESSION", "Invalid cart session id")
	// ErrEmptyCart is returned when checking out a cart with no lines
	ErrEmptyCart = shared.NewDomainError("EMPTY_CART", "Cart is empty")
)

// Cart is the stored form of a customer's cart
type Cart struct {
	Items []order.CartSelection `json:"items"`
}

// CartLine is a priced, localized cart line
type CartLine struct {
	Selection   order.CartSelection `json:"selection"`
	Name        string              `json:"name"`
	Variant     string              `json:"variant,omitempty"`
	Image       string              `json:"image"`
	Swatch      string              `json:"swatch,omitempty"`
	Quote       pricing.Quote       `json:"quote"`
	TotalText   string              `json:"total_text"`
	Unavailable bool                `json:"unavailable,omitempty"`
}

// CartView is a cart priced in the request locale
type CartView struct {
	Session   string            `json:"session"`
	Lines     []CartLine        `json:"lines"`
	Total     valueobject.Money `json:"total"`
	TotalText string            `json:"total_text"`
}

// CartService keeps caller-owned carts in the external key-value store under cart:<session>.
// The store holds only selections; prices are always recomputed from the catalog.
type CartService struct {
	store  shared.KeyValueStore
	repo   catalog.Repository
	engine *pricing.Engine
}

// NewCartService creates a new CartService
func NewCartService(store shared.KeyValueStore, repo catalog.Repository, engine *pricing.Engine) *CartService {
	return &CartService{
		store:  store,
		repo:   repo,
		engine: engine,
	}
}

// Load returns the stored selections; a missing cart is empty
func (s *CartService) Load(ctx context.Context, session string) (*Cart, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	raw, err := s.store.Get(ctx, cartKeyPrefix+session)
	if errors.Is(err, shared.ErrKeyNotFound) {
		return &Cart{Items: []order.CartSelection{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []order.CartSelection{}
	}
	return &cart, nil
}

// Get returns the cart priced in locale.
// Lines whose product has left the catalog are kept and flagged unavailable.
func (s *CartService) Get(ctx context.Context, session string, locale i18n.Locale) (*CartView, error) {
	cart, err := s.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.view(session, cart, locale), nil
}

// Put validates and replaces the cart's selections.
// Every product must exist, an explicit variant must exist, and every quantity
// must be priceable (bulk material at or above its minimum).
func (s *CartService) Put(ctx context.Context, session string, items []order.CartSelection, locale i18n.Locale) (*CartView, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	if len(items) > MaxCartLines {
		return nil, shared.ErrInvalidInput.WithMessage(fmt.Sprintf("cart cannot hold more than %d lines", MaxCartLines))
	}

	cart := &Cart{Items: make([]order.CartSelection, 0, len(items))}
	for i, sel := range items {
		if err := s.validateSelection(sel); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		cart.Items = append(cart.Items, sel)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKeyPrefix+session, string(data)); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.view(session, cart, locale), nil
}

// Clear removes the cart
func (s *CartService) Clear(ctx context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, cartKeyPrefix+session); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartService) validateSelection(sel order.CartSelection) error {
	if sel.Quantity < 0 {
		return shared.ErrInvalidQuantity.WithMessage(
			fmt.Sprintf("quantity for %s must not be negative", sel.ProductID))
	}
	product, err := s.repo.GetProduct(sel.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return shared.ErrUnknownProduct.WithMessage(fmt.Sprintf("unknown product %q", sel.ProductID))
		}
		return err
	}
	if sel.VariantID != "" {
		if _, err := s.repo.GetVariant(sel.ProductID, sel.VariantID); err != nil {
			return err
		}
	}
	quantity := sel.Quantity
	if quantity == 0 {
		quantity = s.engine.MinimumQuantity(product)
	}
	_, err = s.engine.Quote(product, quantity)
	return err
}

func (s *CartService) view(session string, cart *Cart, locale i18n.Locale) *CartView {
	view := &CartView{
		Session: session,
		Lines:   make([]CartLine, 0, len(cart.Items)),
		Total:   valueobject.Zero(s.engine.Currency()),
	}

	for _, sel := range cart.Items {
		line := CartLine{Selection: sel}
		product, err := s.repo.GetProduct(sel.ProductID)
		if err != nil {
			line.Name = sel.ProductID
			line.Unavailable = true
			view.Lines = append(view.Lines, line)
			continue
		}

		display := catalog.ResolveDisplay(product, sel.VariantID, 0, locale)
		line.Name = product.DisplayName(locale)
		line.Image = display.Image
		if !display.Placeholder {
			line.Variant = display.DisplayName
			line.Swatch = display.Variant.Swatch()
		}

		quantity := sel.Quantity
		if quantity == 0 {
			quantity = s.engine.MinimumQuantity(product)
		}
		quote, err := s.engine.Quote(product, quantity)
		if err != nil {
			line.Unavailable = true
			view.Lines = append(view.Lines, line)
			continue
		}
		line.Quote = quote
		line.TotalText = pricing.FormatAmount(quote.Total, locale)
		if sum, err := view.Total.Add(quote.Total); err == nil {
			view.Total = sum
		}
		view.Lines = append(view.Lines, line)
	}

	view.TotalText = pricing.FormatAmount(view.Total, locale)
	return view
}

func validateSession(session string) error {
	if !sessionIDPattern.MatchString(session) {
		return ErrInvalidSession
	}
	return nil
}
