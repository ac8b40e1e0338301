package usecase

import (
	"context"
	"sort"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the conditional-write semantics of
// the SQL layer so the services see the same behavior under test.

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) overlaps(roomID uuid.UUID, checkIn, checkOut time.Time) bool {
	for _, b := range f.bookings {
		if b.RoomID == roomID &&
			b.Status != entity.BookingStatusCancelled &&
			b.CheckInDate.Before(checkOut) &&
			b.CheckOutDate.After(checkIn) {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.overlaps(booking.RoomID, booking.CheckInDate, booking.CheckOutDate) {
		return repository.ErrBookingOverlap
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) FindByBookingID(_ context.Context, bookingID string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.BookingID == bookingID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	all := f.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeBookingRepo) sorted() []*entity.Booking {
	all := make([]*entity.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		copied := *b
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all
}

func (f *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	if f.overlaps(roomID, checkIn, checkOut) {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeBookingRepo) ApplyPayment(_ context.Context, id uuid.UUID, amount float64) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	b.PaidAmount += amount
	b.DueAmount = b.TotalBalance - b.PaidAmount
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) CountDistinctGuests(_ context.Context) (int64, error) {
	emails := make(map[string]struct{})
	for _, b := range f.bookings {
		emails[b.Guest.Email] = struct{}{}
	}
	return int64(len(emails)), nil
}

func (f *fakeBookingRepo) FindWithDue(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	var dues []*entity.Booking
	for _, b := range f.sorted() {
		if b.DueAmount > 0 && b.Status != entity.BookingStatusCancelled {
			dues = append(dues, b)
		}
	}
	if offset >= len(dues) {
		return nil, nil
	}
	dues = dues[offset:]
	if limit < len(dues) {
		dues = dues[:limit]
	}
	return dues, nil
}

func (f *fakeBookingRepo) CountWithDue(_ context.Context) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.DueAmount > 0 && b.Status != entity.BookingStatusCancelled {
			count++
		}
	}
	return count, nil
}

type fakeRoomRepo struct {
	rooms    map[uuid.UUID]*entity.Room
	reserved map[uuid.UUID][]uuid.UUID
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:    make(map[uuid.UUID]*entity.Room),
		reserved: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) FindAvailableByType(_ context.Context, roomTypeID uuid.UUID, limit int) ([]*entity.Room, error) {
	var available []*entity.Room
	for _, r := range f.rooms {
		if r.RoomTypeID == roomTypeID && r.Status == entity.RoomStatusAvailable {
			copied := *r
			available = append(available, &copied)
		}
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].RoomNumber < available[j].RoomNumber
	})
	if len(available) > limit {
		available = available[:limit]
	}
	return available, nil
}

func (f *fakeRoomRepo) FilterAvailable(_ context.Context, adults, children int, bedType entity.BedType) ([]*entity.Room, error) {
	var matched []*entity.Room
	for _, r := range f.rooms {
		if r.Status == entity.RoomStatusAvailable &&
			r.CapacityAdults >= adults &&
			r.CapacityChildren >= children &&
			r.BedType == bedType {
			copied := *r
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RoomNumber < matched[j].RoomNumber
	})
	return matched, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RoomStatus) error {
	if r, ok := f.rooms[id]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeRoomRepo) Reserve(_ context.Context, roomID, bookingID uuid.UUID) error {
	f.reserved[roomID] = append(f.reserved[roomID], bookingID)
	return nil
}

func (f *fakeRoomRepo) Unreserve(_ context.Context, roomID, bookingID uuid.UUID) error {
	ids := f.reserved[roomID]
	for i, id := range ids {
		if id == bookingID {
			f.reserved[roomID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCouponRepo struct {
	coupons map[string]*entity.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*entity.Coupon)}
}

func (f *fakeCouponRepo) Create(_ context.Context, coupon *entity.Coupon) error {
	copied := *coupon
	f.coupons[coupon.Code] = &copied
	return nil
}

func (f *fakeCouponRepo) FindByCode(_ context.Context, code string) (*entity.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCouponRepo) Redeem(_ context.Context, code string) error {
	c, ok := f.coupons[code]
	if !ok || !c.IsActive || c.UsedCount >= c.UsageLimit {
		return repository.ErrCouponExhausted
	}
	c.UsedCount++
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	copied := *payment
	f.payments = append(f.payments, &copied)
	return nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var matched []*entity.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			copied := *p
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}

func (f *fakePaymentRepo) SumSuccessfulSince(_ context.Context, since time.Time) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		if p.Status == entity.PaymentStatusSuccess && !p.CreatedAt.Before(since) {
			sum += p.Amount
		}
	}
	return sum, nil
}

type fakeRoomTypeRepo struct {
	roomTypes map[uuid.UUID]*entity.RoomType
}

func newFakeRoomTypeRepo() *fakeRoomTypeRepo {
	return &fakeRoomTypeRepo{roomTypes: make(map[uuid.UUID]*entity.RoomType)}
}

func (f *fakeRoomTypeRepo) Create(_ context.Context, roomType *entity.RoomType) error {
	copied := *roomType
	f.roomTypes[roomType.ID] = &copied
	return nil
}

func (f *fakeRoomTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomType, error) {
	rt, ok := f.roomTypes[id]
	if !ok {
		return nil, nil
	}
	copied := *rt
	return &copied, nil
}

func (f *fakeRoomTypeRepo) FindAll(_ context.Context) ([]*entity.RoomType, error) {
	var all []*entity.RoomType
	for _, rt := range f.roomTypes {
		copied := *rt
		all = append(all, &copied)
	}
	return all, nil
}

type fakePaymentMethodRepo struct {
	methods map[uuid.UUID]*entity.PaymentMethod
}

func newFakePaymentMethodRepo() *fakePaymentMethodRepo {
	return &fakePaymentMethodRepo{methods: make(map[uuid.UUID]*entity.PaymentMethod)}
}

func (f *fakePaymentMethodRepo) Create(_ context.Context, pm *entity.PaymentMethod) error {
	copied := *pm
	f.methods[pm.ID] = &copied
	return nil
}

func (f *fakePaymentMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	pm, ok := f.methods[id]
	if !ok {
		return nil, nil
	}
	copied := *pm
	return &copied, nil
}

func (f *fakePaymentMethodRepo) FindAll(_ context.Context) ([]*entity.PaymentMethod, error) {
	var all []*entity.PaymentMethod
	for _, pm := range f.methods {
		copied := *pm
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakePaymentMethodRepo) FindAllActive(_ context.Context) ([]*entity.PaymentMethod, error) {
	var active []*entity.PaymentMethod
	for _, pm := range f.methods {
		if pm.IsActive {
			copied := *pm
			active = append(active, &copied)
		}
	}
	return active, nil
}

func (f *fakePaymentMethodRepo) Update(_ context.Context, pm *entity.PaymentMethod) error {
	copied := *pm
	f.methods[pm.ID] = &copied
	return nil
}

func (f *fakePaymentMethodRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.methods, id)
	return nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, nil
}

type fakeSessionRepo struct{}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	return nil, nil
}

// fakeMailer records confirmation sends instead of dialing SMTP.
type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendBookingConfirmation(booking *entity.Booking, _ *entity.Room, _ *entity.RoomType, _ string, _ string) error {
	f.sent = append(f.sent, booking.BookingID)
	return nil
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:          &fakeUserRepo{},
		Session:       &fakeSessionRepo{},
		RoomType:      newFakeRoomTypeRepo(),
		Room:          newFakeRoomRepo(),
		Coupon:        newFakeCouponRepo(),
		PaymentMethod: newFakePaymentMethodRepo(),
		Booking:       newFakeBookingRepo(),
		Payment:       &fakePaymentRepo{},
	}
}
