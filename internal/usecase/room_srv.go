package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	GetRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, id string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	FilterRooms(ctx context.Context, req *request.FilterRoomsRequest) ([]response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(
	repo *repository.Repository,
	log *zap.Logger,
) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TypeName:    req.TypeName,
		Description: req.Description,
		Amenities:   req.Amenities,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		s.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("type_name", req.TypeName),
		)
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.String("type_name", roomType.TypeName),
	)

	result := response.RoomTypeToResponse(roomType)
	return &result, nil
}

func (s *roomService) GetRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	roomTypes, err := s.repo.RoomType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find room types: %w", err)
	}

	results := make([]response.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		results[i] = response.RoomTypeToResponse(rt)
	}
	return results, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	roomTypeID, err := utils.ParseUUID(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("parse room type id: %w", err)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("find room type: %w", err)
	}
	if roomType == nil {
		return nil, ErrRoomTypeNotFound
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomTypeID:       roomTypeID,
		RoomNumber:       req.RoomNumber,
		Floor:            req.Floor,
		Facilities:       req.Facilities,
		BedType:          entity.BedType(req.BedType),
		CapacityAdults:   req.CapacityAdults,
		CapacityChildren: req.CapacityChildren,
		PricePerNight:    req.PricePerNight,
		Tax:              req.Tax,
		TotalPrice:       NightlyTotal(req.PricePerNight, req.Tax),
		Status:           entity.RoomStatusAvailable,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", req.RoomNumber),
		)
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_number", room.RoomNumber),
		zap.Float64("total_price", room.TotalPrice),
	)

	result := response.RoomToResponse(room)
	return &result, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	roomID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse room id: %w", err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.Floor != "" {
		room.Floor = req.Floor
	}
	if len(req.Facilities) > 0 {
		room.Facilities = req.Facilities
	}
	if req.BedType != "" {
		room.BedType = entity.BedType(req.BedType)
	}
	if req.CapacityAdults > 0 {
		room.CapacityAdults = req.CapacityAdults
	}
	if req.CapacityChildren > 0 {
		room.CapacityChildren = req.CapacityChildren
	}
	if req.PricePerNight > 0 {
		room.PricePerNight = req.PricePerNight
	}
	if req.Tax > 0 {
		room.Tax = req.Tax
	}
	if req.Status != "" {
		room.Status = entity.RoomStatus(req.Status)
	}

	// The nightly rate is derived, never written directly.
	room.TotalPrice = NightlyTotal(room.PricePerNight, room.Tax)
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", id),
		)
		return nil, fmt.Errorf("update room: %w", err)
	}

	result := response.RoomToResponse(room)
	return &result, nil
}

func (s *roomService) FilterRooms(ctx context.Context, req *request.FilterRoomsRequest) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FilterAvailable(ctx, req.Adults, req.Children, entity.BedType(req.BedType))
	if err != nil {
		s.log.Error("Failed to filter rooms",
			zap.Error(err),
			zap.Int("adults", req.Adults),
			zap.Int("children", req.Children),
			zap.String("bed_type", req.BedType),
		)
		return nil, fmt.Errorf("filter rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, ErrNoRoomsAvailable
	}

	results := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		results[i] = response.RoomToResponse(room)
	}
	return results, nil
}
