package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

// OrderUseCase answers order status questions.
type OrderUseCase interface {
	// StatusReply extracts an order number from the message, or falls back
	// to the customer's phone, and formats the status.
	StatusReply(ctx context.Context, text, customerPhone string) (string, error)
}

type orderUseCase struct {
	orderRepo repository.OrderRepository
}

const msgOrderNotFound = "No encontré una orden con ese número. ¿Podrías verificarlo?"
const msgNoOrders = "No encontré órdenes asociadas a tu número. Si tienes el número de orden, envíamelo."

var reOrderNumber = regexp.MustCompile(`\b\d{4,}\b`)

func NewOrderUseCase(orderRepo repository.OrderRepository) OrderUseCase {
	return &orderUseCase{orderRepo: orderRepo}
}

func (u *orderUseCase) StatusReply(ctx context.Context, text, customerPhone string) (string, error) {
	if number := reOrderNumber.FindString(text); number != "" {
		order, err := u.orderRepo.GetByNumber(ctx, number)
		if err != nil {
			return FormatTransientError(), err
		}
		if order == nil {
			return msgOrderNotFound, nil
		}
		return formatOrder(*order), nil
	}

	orders, err := u.orderRepo.ListByPhone(ctx, customerPhone, 3)
	if err != nil {
		return FormatTransientError(), err
	}
	if len(orders) == 0 {
		return msgNoOrders, nil
	}

	var b strings.Builder
	b.WriteString("Tus órdenes recientes:\n")
	for _, order := range orders {
		b.WriteString(formatOrder(order))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func formatOrder(order entity.Order) string {
	if order.Description != "" {
		return fmt.Sprintf("Orden %s (%s): %s", order.Number, order.Description, order.Status)
	}
	return fmt.Sprintf("Orden %s: %s", order.Number, order.Status)
}
