package services

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackingFixture(orderStatus models.OrderStatus) (OrderTrackingService, *fakeOrderRepo, *fakeTrackingRepo) {
	orderRepo := newFakeOrderRepo(&models.Order{
		ID:          1,
		OrderNumber: "ORD-TRK",
		UserID:      7,
		Status:      string(orderStatus),
	})
	trackingRepo := newFakeTrackingRepo(orderRepo)
	return NewOrderTrackingService(orderRepo, trackingRepo), orderRepo, trackingRepo
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("valid transition updates order and appends history", func(t *testing.T) {
		svc, orderRepo, _ := trackingFixture(models.OrderConfirmed)

		err := svc.UpdateOrderStatus(1, models.OrderShipped, "handed to carrier", "warehouse 3", 2)
		require.NoError(t, err)

		order, _ := orderRepo.GetByID(1)
		assert.Equal(t, string(models.OrderShipped), order.Status)

		timeline, err := svc.GetTimeline(1)
		require.NoError(t, err)
		require.Len(t, timeline, 1)
		assert.Equal(t, string(models.OrderShipped), timeline[0].Status)
		assert.Equal(t, "handed to carrier", timeline[0].Description)
		assert.Equal(t, "warehouse 3", timeline[0].Location)
		assert.Equal(t, uint(2), timeline[0].ChangedBy)
	})

	t.Run("full lifecycle keeps the timeline in order", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderPending)

		steps := []models.OrderStatus{
			models.OrderConfirmed,
			models.OrderShipped,
			models.OrderDelivered,
		}
		for _, step := range steps {
			require.NoError(t, svc.UpdateOrderStatus(1, step, "", "", 2))
		}

		timeline, err := svc.GetTimeline(1)
		require.NoError(t, err)
		require.Len(t, timeline, len(steps))
		for i, step := range steps {
			assert.Equal(t, string(step), timeline[i].Status)
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		svc, orderRepo, _ := trackingFixture(models.OrderConfirmed)

		err := svc.UpdateOrderStatus(1, models.OrderDelivered, "", "", 2)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		order, _ := orderRepo.GetByID(1)
		assert.Equal(t, string(models.OrderConfirmed), order.Status)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderDelivered)

		err := svc.UpdateOrderStatus(1, models.OrderShipped, "", "", 2)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status string", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderConfirmed)

		err := svc.UpdateOrderStatus(1, models.OrderStatus("teleported"), "", "", 2)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderConfirmed)

		err := svc.UpdateOrderStatus(42, models.OrderShipped, "", "", 2)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestTrackWithCourier(t *testing.T) {
	t.Run("dispatches by carrier", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderShipped)
		require.NoError(t, svc.SetTrackingDetails(1, "bluedart", "BD123", nil))

		status, err := svc.TrackWithCourier(1)
		require.NoError(t, err)
		assert.Equal(t, "bluedart", status.Carrier)
		assert.Equal(t, "BD123", status.TrackingNumber)
		assert.Equal(t, "in_transit", status.Status)

		require.NoError(t, svc.SetTrackingDetails(1, "delhivery", "DL456", nil))
		status, err = svc.TrackWithCourier(1)
		require.NoError(t, err)
		assert.Equal(t, "out_for_delivery", status.Status)
	})

	t.Run("unsupported carrier", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderShipped)
		require.NoError(t, svc.SetTrackingDetails(1, "pigeon-post", "PP1", nil))

		_, err := svc.TrackWithCourier(1)
		assert.ErrorContains(t, err, "unsupported carrier")
	})

	t.Run("no carrier assigned", func(t *testing.T) {
		svc, _, trackingRepo := trackingFixture(models.OrderShipped)
		trackingRepo.tracking[1] = &models.OrderTracking{OrderID: 1}

		_, err := svc.TrackWithCourier(1)
		assert.ErrorContains(t, err, "no carrier assigned")
	})

	t.Run("no tracking row yet", func(t *testing.T) {
		svc, _, _ := trackingFixture(models.OrderShipped)

		_, err := svc.TrackWithCourier(1)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
