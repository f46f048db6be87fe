package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
)

// HandoffCoordinator builds the handoff payload and gives it to the pickup flow.
type HandoffCoordinator struct {
	pickup  domain.PickupFlow
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewHandoffCoordinator creates a HandoffCoordinator.
func NewHandoffCoordinator(pickup domain.PickupFlow, logger *slog.Logger, metrics *observability.Metrics) *HandoffCoordinator {
	return &HandoffCoordinator{pickup: pickup, logger: logger, metrics: metrics}
}

// Handoff delivers {label, origin, destination}. Callers guarantee both
// points are resolved; nothing is re-validated here.
func (h *HandoffCoordinator) Handoff(ctx context.Context, label string, origin, destination domain.GeoPoint) (domain.HandoffPayload, error) {
	payload := domain.NewHandoffPayload(label, origin, destination)

	if err := h.pickup.StartPickup(ctx, payload); err != nil {
		h.metrics.HandoffPublishErrors.Inc()
		h.logger.Error("pickup handoff failed", "handoff_id", payload.ID, "error", err)
		return domain.HandoffPayload{}, fmt.Errorf("start pickup: %w", err)
	}

	h.metrics.HandoffsPublished.Inc()
	h.logger.Info("handed off to pickup flow", "handoff_id", payload.ID)
	return payload, nil
}
