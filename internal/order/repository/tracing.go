package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/Golgrax/pupshop/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepositoryWithTracing wraps GormOrderRepository with tracing
type GormOrderRepositoryWithTracing struct {
	*GormOrderRepository
}

// NewGormOrderRepositoryWithTracing creates a new repository with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *GormOrderRepositoryWithTracing {
	return &GormOrderRepositoryWithTracing{
		GormOrderRepository: NewGormOrderRepository(db),
	}
}

// CreateWithItemsWithContext commits the checkout batch under a span
func (r *GormOrderRepositoryWithTracing) CreateWithItemsWithContext(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	_, span := tracer.Start(ctx, "repository.CreateWithItems",
		trace.WithAttributes(
			attribute.Int("order.user_id", int(order.UserID)),
			attribute.Float64("order.total_amount", order.TotalAmount),
			attribute.Int("order.line_count", len(items)),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.CreateWithItems(order, items)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("order.id", int(order.ID)),
		attribute.String("order.reference_no", order.ReferenceNo),
	)
	return nil
}
