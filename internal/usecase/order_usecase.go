package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
	"github.com/HailNail/MindArc/internal/pricing"
)

const defaultOrderPageSize = 10

// PaymentCurrency is the only currency the storefront charges in.
const PaymentCurrency = "usd"

type OrderUseCase struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	payments    PaymentGateway
}

func NewOrderUseCase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	payments PaymentGateway,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		payments:    payments,
	}
}

// OrderItemInput is a requested line item. Any price the client sends
// alongside it is discarded.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// PaymentConfirmation is the processor result the client relays after
// completing a payment.
type PaymentConfirmation struct {
	ID           string
	Status       string
	ReceiptEmail string
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders      []entities.Order
	PageNumber  int64
	Pages       int64
	TotalOrders int64
}

// CreateOrder builds and persists an order for the authenticated user.
// Every referenced product is re-read from the store and its current
// price substituted, so client-supplied prices never reach the order.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, items []OrderItemInput, address entities.ShippingAddress, paymentMethod string) (*entities.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	orderItems := make([]entities.OrderItem, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d has invalid quantity", ErrInvalidItem, i)
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("failed to load product %s: %w", item.ProductID, err)
		}

		orderItems[i] = entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			Quantity:  item.Quantity,
		}
	}

	prices := pricing.Calculate(orderItems)

	now := time.Now()
	order := &entities.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           orderItems,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// ListOrders pages through all orders, newest first. Admin listing.
func (uc *OrderUseCase) ListOrders(ctx context.Context, pageNumber, pageSize int64) (*OrderPage, error) {
	return uc.listOrders(ctx, "", pageNumber, pageSize)
}

// ListUserOrders pages through the caller's own orders.
func (uc *OrderUseCase) ListUserOrders(ctx context.Context, userID string, pageNumber, pageSize int64) (*OrderPage, error) {
	return uc.listOrders(ctx, userID, pageNumber, pageSize)
}

func (uc *OrderUseCase) listOrders(ctx context.Context, userID string, pageNumber, pageSize int64) (*OrderPage, error) {
	if pageSize < 1 {
		pageSize = defaultOrderPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	skip := pageSize * (pageNumber - 1)

	total, err := uc.orderRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := uc.orderRepo.List(ctx, userID, skip, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	uc.attachUsers(ctx, orders, false)

	pages := (total + pageSize - 1) / pageSize
	return &OrderPage{
		Orders:      orders,
		PageNumber:  pageNumber,
		Pages:       pages,
		TotalOrders: total,
	}, nil
}

// GetOrder fetches a single order with the owning user expanded to
// id, username and email.
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	orders := []entities.Order{*order}
	uc.attachUsers(ctx, orders, true)
	return &orders[0], nil
}

// CreatePaymentIntent registers a processor-side intent for the order
// total and returns the client secret. No local state changes.
func (uc *OrderUseCase) CreatePaymentIntent(ctx context.Context, totalPrice float64) (string, error) {
	clientSecret, err := uc.payments.CreateIntent(ctx, pricing.MinorUnits(totalPrice), PaymentCurrency)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return clientSecret, nil
}

// MarkOrderAsPaid records the payment confirmation on the order. A
// repeat call overwrites paidAt and paymentResult; isPaid stays true.
func (uc *OrderUseCase) MarkOrderAsPaid(ctx context.Context, orderID string, confirmation PaymentConfirmation, callerEmail string) (*entities.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	email := confirmation.ReceiptEmail
	if email == "" {
		email = callerEmail
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &entities.PaymentResult{
		ID:           confirmation.ID,
		Status:       confirmation.Status,
		UpdateTime:   now.UTC().Format(time.RFC3339),
		EmailAddress: email,
	}
	order.UpdatedAt = now

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// MarkOrderAsDelivered flags the order delivered. The route is
// admin-only; there is no server-side requirement that the order was
// paid first.
func (uc *OrderUseCase) MarkOrderAsDelivered(ctx context.Context, orderID string) (*entities.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now
	order.UpdatedAt = now

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

// CountOrders is the public dashboard metric: total orders ever placed.
func (uc *OrderUseCase) CountOrders(ctx context.Context) (int64, error) {
	total, err := uc.orderRepo.Count(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// attachUsers expands the owning-user reference on each order. A
// missing user leaves the reference nil rather than failing the
// listing.
func (uc *OrderUseCase) attachUsers(ctx context.Context, orders []entities.Order, includeEmail bool) {
	cache := make(map[string]*entities.UserSummary)
	for i := range orders {
		summary, seen := cache[orders[i].UserID]
		if !seen {
			user, err := uc.userRepo.GetByID(ctx, orders[i].UserID)
			if err == nil {
				summary = &entities.UserSummary{ID: user.ID, Username: user.Username}
				if includeEmail {
					summary.Email = user.Email
				}
			}
			cache[orders[i].UserID] = summary
		}
		orders[i].User = summary
	}
}
