package services_test

import (
	"testing"

	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteStatusEngine_ComputeRouteReport(t *testing.T) {
	engine := services.NewRouteStatusEngine()

	t.Run("should report a single leg gated by its pickup", func(t *testing.T) {
		s := singleLeg(t,
			pickupOrder(t, "O1", "A", "New"),
			dropOrder(t, "O1", "B", "Delivered"),
		)

		report := engine.ComputeRouteReport(s)

		assert.Equal(t, "SHP-1", report.ShipmentID)
		require.Len(t, report.Segments, 2)
		assert.Equal(t, shipment.NotStarted, report.Segments[0].Status)
		assert.Equal(t, shipment.NotStarted, report.Segments[1].Status)
		require.Len(t, report.Legs, 1)
		assert.Equal(t, shipment.NotStarted, report.Legs[0].Status)
		assert.Equal(t, 0, report.ActiveLeg)
		assert.Equal(t, shipment.NotStarted, report.Overall)
	})

	t.Run("should report a completed single leg", func(t *testing.T) {
		s := singleLeg(t,
			pickupOrder(t, "O1", "A", "Picked up"),
			dropOrder(t, "O1", "B", "Delivered"),
		)

		report := engine.ComputeRouteReport(s)

		assert.Equal(t, shipment.Completed, report.Legs[0].Status)
		assert.Equal(t, -1, report.ActiveLeg)
		assert.Equal(t, shipment.Completed, report.Overall)
	})

	t.Run("should report every leg of a multi-leg route", func(t *testing.T) {
		s := newShipment(t,
			[]shipment.Segment{
				pickupAt(t, 1, "A"), dropAt(t, 2, "B"),
				pickupAt(t, 3, "C"), dropAt(t, 4, "D"),
				pickupAt(t, 5, "E"), dropAt(t, 6, "F"),
			},
			pickupOrder(t, "O1", "A", "Picked up"),
			dropOrder(t, "O1", "B", "Delivered"),
			pickupOrder(t, "O2", "C", "Picked up"),
			dropOrder(t, "O2", "D", "In-Transit"),
			pickupOrder(t, "O3", "E", "Picked up"),
			dropOrder(t, "O3", "F", "Delivered"),
		)

		report := engine.ComputeRouteReport(s)

		statuses := make([]shipment.SegmentStatus, 0, len(report.Segments))
		for _, seg := range report.Segments {
			statuses = append(statuses, seg.Status)
		}
		assert.Equal(t, []shipment.SegmentStatus{
			shipment.Completed, shipment.Completed,
			shipment.Completed, shipment.InProgress,
			shipment.NotStarted, shipment.NotStarted,
		}, statuses)

		require.Len(t, report.Legs, 3)
		assert.Equal(t, shipment.Completed, report.Legs[0].Status)
		assert.Equal(t, shipment.InProgress, report.Legs[1].Status)
		assert.Equal(t, shipment.NotStarted, report.Legs[2].Status)
		assert.Equal(t, "C", report.Legs[1].Pickup.Segment.Location().String())
		assert.Equal(t, 2, report.Segments[5].Leg)
		assert.Equal(t, 1, report.ActiveLeg)
		assert.Equal(t, shipment.InProgress, report.Overall)
	})

	t.Run("should report a trailing segment without a leg", func(t *testing.T) {
		s := newShipment(t,
			[]shipment.Segment{pickupAt(t, 1, "A"), dropAt(t, 2, "B"), pickupAt(t, 3, "C")},
			pickupOrder(t, "O1", "A", "Picked up"),
			dropOrder(t, "O1", "B", "Delivered"),
		)

		report := engine.ComputeRouteReport(s)

		assert.Len(t, report.Segments, 3)
		assert.Len(t, report.Legs, 1)
		assert.Equal(t, -1, report.ActiveLeg)
	})

	t.Run("should return an empty report for a nil shipment", func(t *testing.T) {
		report := engine.ComputeRouteReport(nil)

		assert.Empty(t, report.Segments)
		assert.Empty(t, report.Legs)
		assert.Equal(t, shipment.NotStarted, report.Overall)
		assert.Equal(t, -1, report.ActiveLeg)
	})
}

func TestRouteStatusEngine_ComputeSegmentReport(t *testing.T) {
	engine := services.NewRouteStatusEngine()
	s := twoLegs(t,
		pickupOrder(t, "O1", "A", "Picked up"),
		dropOrder(t, "O1", "B", "Delivered"),
		pickupOrder(t, "O2", "C", "In-Transit"),
	)

	t.Run("should scope a multi-leg segment to its location", func(t *testing.T) {
		report, ok := engine.ComputeSegmentReport(s, 2)

		require.True(t, ok)
		assert.Equal(t, 1, report.Leg)
		assert.Equal(t, 3, report.Segment.ID())
		assert.Equal(t, shipment.InProgress, report.Status)
	})

	t.Run("should match the route report", func(t *testing.T) {
		full := engine.ComputeRouteReport(s)

		for position, expected := range full.Segments {
			report, ok := engine.ComputeSegmentReport(s, position)
			require.True(t, ok)
			assert.Equal(t, expected.Status, report.Status)
		}
	})

	t.Run("should reject positions outside the route", func(t *testing.T) {
		_, ok := engine.ComputeSegmentReport(s, 4)
		assert.False(t, ok)

		_, ok = engine.ComputeSegmentReport(s, -1)
		assert.False(t, ok)

		_, ok = engine.ComputeSegmentReport(nil, 0)
		assert.False(t, ok)
	})
}
