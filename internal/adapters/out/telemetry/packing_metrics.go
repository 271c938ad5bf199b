package telemetry

import (
	"context"
	"errors"
	"fmt"

	"packing/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const MeterName = "packing"

var ErrMeterNil = errors.New("NewPackingMetrics: meter cannot be nil")

var _ ports.PackingMetrics = (*PackingMetrics)(nil)

// PackingMetrics records counters for the packing workflow.
type PackingMetrics struct {
	logger *zap.Logger

	sessionsCreated       metric.Int64Counter
	sessionsCompleted     metric.Int64Counter
	sessionsDeleted       metric.Int64Counter
	cartonsOpened         metric.Int64Counter
	itemsPacked           metric.Int64Counter
	cartonsSealed         metric.Int64Counter
	shipmentsConsolidated metric.Int64Counter
	shipmentCartons       metric.Int64Histogram
}

func NewPackingMetrics(meter metric.Meter, logger *zap.Logger) (*PackingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &PackingMetrics{logger: logger}
	var err error
	counter := func(name, desc, unit string) metric.Int64Counter {
		if err != nil {
			return nil
		}
		var c metric.Int64Counter
		c, err = meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			err = fmt.Errorf("create counter %s: %w", name, err)
		}
		return c
	}

	m.sessionsCreated = counter("packing.sessions.created", "Packaging sessions started", "{session}")
	m.sessionsCompleted = counter("packing.sessions.completed", "Packaging sessions completed", "{session}")
	m.sessionsDeleted = counter("packing.sessions.deleted", "Packaging sessions deleted", "{session}")
	m.cartonsOpened = counter("packing.cartons.created", "Cartons created with a session", "{carton}")
	m.itemsPacked = counter("packing.items.packed", "Units recorded in carton ledgers", "{item}")
	m.cartonsSealed = counter("packing.cartons.sealed", "Cartons sealed", "{carton}")
	m.shipmentsConsolidated = counter("packing.shipments.consolidated", "Shipments created by consolidation", "{shipment}")
	if err != nil {
		return nil, err
	}

	m.shipmentCartons, err = meter.Int64Histogram("packing.shipment.cartons",
		metric.WithDescription("Cartons per consolidated shipment"),
		metric.WithUnit("{carton}"))
	if err != nil {
		return nil, fmt.Errorf("create histogram packing.shipment.cartons: %w", err)
	}
	return m, nil
}

func (m *PackingMetrics) SessionCreated(ctx context.Context, cartons int) {
	m.sessionsCreated.Add(ctx, 1)
	m.cartonsOpened.Add(ctx, int64(cartons))
}

func (m *PackingMetrics) SessionCompleted(ctx context.Context) {
	m.sessionsCompleted.Add(ctx, 1)
}

func (m *PackingMetrics) SessionDeleted(ctx context.Context) {
	m.sessionsDeleted.Add(ctx, 1)
}

func (m *PackingMetrics) ItemsPacked(ctx context.Context, quantity int) {
	if quantity <= 0 {
		return
	}
	m.itemsPacked.Add(ctx, int64(quantity))
}

func (m *PackingMetrics) CartonSealed(ctx context.Context) {
	m.cartonsSealed.Add(ctx, 1)
}

func (m *PackingMetrics) ShipmentConsolidated(ctx context.Context, orderType string, cartons int) {
	attrs := metric.WithAttributes(attribute.String("order_type", orderType))
	m.shipmentsConsolidated.Add(ctx, 1, attrs)
	m.shipmentCartons.Record(ctx, int64(cartons), attrs)
	m.logger.Debug("shipment consolidated", zap.String("order_type", orderType), zap.Int("cartons", cartons))
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

var _ ports.PackingMetrics = NopMetrics{}

func (NopMetrics) SessionCreated(context.Context, int)               {}
func (NopMetrics) SessionCompleted(context.Context)                  {}
func (NopMetrics) SessionDeleted(context.Context)                    {}
func (NopMetrics) ItemsPacked(context.Context, int)                  {}
func (NopMetrics) CartonSealed(context.Context)                      {}
func (NopMetrics) ShipmentConsolidated(context.Context, string, int) {}
