package shipment_test

import (
	"testing"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSegment(t *testing.T, id int, segmentType shipment.SegmentType, location string) shipment.Segment {
	t.Helper()
	s, err := shipment.NewSegment(id, segmentType, kernel.MustLocationCode(location), "", "")
	require.NoError(t, err)
	return s
}

func TestNewSegment(t *testing.T) {
	t.Run("should create a valid segment", func(t *testing.T) {
		loc := kernel.MustLocationCode("WH-A")

		s, err := shipment.NewSegment(1, shipment.SegmentPickup, loc, "12 km", "25 min")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, 1, s.ID())
		assert.Equal(t, shipment.SegmentPickup, s.Type())
		assert.True(t, loc.IsEqual(s.Location()))
		assert.Equal(t, "12 km", s.Distance())
		assert.Equal(t, "25 min", s.Duration())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		s, err := shipment.NewSegment(0, shipment.SegmentType("transfer"), kernel.LocationCode{}, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, kernel.ErrLocationCodeIsRequired)
		assert.ErrorIs(t, s.Validate(), shipment.ErrSegmentIsNotConstructed)
	})

	t.Run("should reject negative ids", func(t *testing.T) {
		_, err := shipment.NewSegment(-3, shipment.SegmentDrop, kernel.MustLocationCode("B"), "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSegment_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var s shipment.Segment

		assert.ErrorIs(t, s.Validate(), shipment.ErrSegmentIsNotConstructed)
	})
}

func TestParseSegmentType(t *testing.T) {
	tests := []struct {
		input    string
		expected shipment.SegmentType
		wantErr  bool
	}{
		{input: "pickup", expected: shipment.SegmentPickup},
		{input: "drop", expected: shipment.SegmentDrop},
		{input: "Pickup", wantErr: true},
		{input: "P", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("should parse "+tt.input, func(t *testing.T) {
			got, err := shipment.ParseSegmentType(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSegmentType_OrderType(t *testing.T) {
	t.Run("should map pickup segments to pickup orders", func(t *testing.T) {
		assert.Equal(t, order.Pickup, shipment.SegmentPickup.OrderType())
	})

	t.Run("should map drop segments to drop orders", func(t *testing.T) {
		assert.Equal(t, order.Drop, shipment.SegmentDrop.OrderType())
	})
}
