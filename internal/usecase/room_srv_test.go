package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoomServiceForTest(t *testing.T) (RoomService, string) {
	t.Helper()
	repo := newTestRepository()
	svc := NewRoomService(repo, zap.NewNop())

	roomType, err := svc.CreateRoomType(context.Background(), &request.CreateRoomTypeRequest{
		TypeName:    "Suite",
		Description: "Corner suite",
		Amenities:   []string{"wifi", "minibar"},
	})
	require.NoError(t, err)
	return svc, roomType.ID
}

func TestCreateRoomDerivesNightlyTotal(t *testing.T) {
	svc, roomTypeID := newRoomServiceForTest(t)

	room, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomTypeID:       roomTypeID,
		RoomNumber:       "301",
		Floor:            "3",
		Facilities:       []string{"wifi"},
		BedType:          "king",
		CapacityAdults:   2,
		CapacityChildren: 1,
		PricePerNight:    200,
		Tax:              10,
	})
	require.NoError(t, err)

	// 200 + 10% tax
	assert.Equal(t, 220.0, room.TotalPrice)
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)
}

func TestCreateRoomUnknownType(t *testing.T) {
	svc, _ := newRoomServiceForTest(t)

	_, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomTypeID:     uuid.New().String(),
		RoomNumber:     "301",
		Floor:          "3",
		Facilities:     []string{"wifi"},
		BedType:        "king",
		CapacityAdults: 2,
		PricePerNight:  200,
	})
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestUpdateRoomRecomputesTotal(t *testing.T) {
	svc, roomTypeID := newRoomServiceForTest(t)

	room, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomTypeID:     roomTypeID,
		RoomNumber:     "301",
		Floor:          "3",
		Facilities:     []string{"wifi"},
		BedType:        "king",
		CapacityAdults: 2,
		PricePerNight:  200,
		Tax:            10,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRoom(context.Background(), room.ID, &request.UpdateRoomRequest{
		PricePerNight: 100,
		Status:        "under-maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, 110.0, updated.TotalPrice)
	assert.Equal(t, entity.RoomStatusMaintenance, updated.Status)
}

func TestFilterRooms(t *testing.T) {
	svc, roomTypeID := newRoomServiceForTest(t)

	for _, spec := range []struct {
		number  string
		bedType string
		adults  int
	}{
		{"101", "queen", 2},
		{"102", "king", 3},
		{"103", "king", 2},
	} {
		_, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
			RoomTypeID:     roomTypeID,
			RoomNumber:     spec.number,
			Floor:          "1",
			Facilities:     []string{"wifi"},
			BedType:        spec.bedType,
			CapacityAdults: spec.adults,
			PricePerNight:  100,
		})
		require.NoError(t, err)
	}

	rooms, err := svc.FilterRooms(context.Background(), &request.FilterRoomsRequest{
		Adults:  3,
		BedType: "king",
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "102", rooms[0].RoomNumber)
}

func TestFilterRoomsNoneAvailable(t *testing.T) {
	svc, _ := newRoomServiceForTest(t)

	_, err := svc.FilterRooms(context.Background(), &request.FilterRoomsRequest{
		Adults:  2,
		BedType: "king",
	})
	assert.ErrorIs(t, err, ErrNoRoomsAvailable)
}
