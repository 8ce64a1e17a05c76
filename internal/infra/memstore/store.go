package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingStore keeps bookings in process memory. A single RWMutex serialises
// writers, which makes the free-slot check and the insert one atomic step.
type BookingStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]booking.Snapshot
	active map[booking.SlotKey]uuid.UUID
}

var _ shared.BookingStore = (*BookingStore)(nil)

func NewBookingStore() *BookingStore {
	return &BookingStore{
		byID:   make(map[uuid.UUID]booking.Snapshot),
		active: make(map[booking.SlotKey]uuid.UUID),
	}
}

func (s *BookingStore) Insert(ctx context.Context, b *booking.Booking) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("insert cancelled", err)
	}

	snap := b.Snapshot()
	key := b.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.byID[snap.ID]; dup {
		return infra.WrapRepoErr("booking id already exists", nil, infra.KindDuplicateKey)
	}
	if b.IsActive() {
		if _, taken := s.active[key]; taken {
			return infra.WrapRepoErr("slot "+key.String()+" already booked", nil, infra.KindConflict)
		}
		s.active[key] = snap.ID
	}
	s.byID[snap.ID] = snap
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("find cancelled", err)
	}

	s.mu.RLock()
	snap, ok := s.byID[id]
	s.mu.RUnlock()

	if !ok {
		return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
	}
	return restore(snap)
}

func (s *BookingStore) Find(ctx context.Context, filter shared.BookingFilter) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("find cancelled", err)
	}

	s.mu.RLock()
	matched := make([]booking.Snapshot, 0, len(s.byID))
	for _, snap := range s.byID {
		if matches(snap, filter) {
			matched = append(matched, snap)
		}
	}
	s.mu.RUnlock()

	out := make([]*booking.Booking, 0, len(matched))
	for _, snap := range matched {
		b, err := restore(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	slices.SortFunc(out, booking.Compare)
	return out, nil
}

func (s *BookingStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to booking.Status,
	at time.Time,
) (*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("update cancelled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
	}
	if snap.Status != from {
		return nil, infra.WrapRepoErr("booking "+id.String()+" is "+snap.Status.String(), nil, infra.KindConflict)
	}

	key := booking.SlotKey{Date: snap.Date, Slot: snap.Slot}
	if to == booking.StatusBooked {
		if holder, taken := s.active[key]; taken && holder != id {
			return nil, infra.WrapRepoErr("slot "+key.String()+" already booked", nil, infra.KindConflict)
		}
		s.active[key] = id
	} else if s.active[key] == id {
		delete(s.active, key)
	}

	snap.Status = to
	snap.UpdatedAt = at
	s.byID[id] = snap
	return restore(snap)
}

func matches(snap booking.Snapshot, f shared.BookingFilter) bool {
	if f.Email != nil && snap.Email != *f.Email {
		return false
	}
	if f.Date != nil && snap.Date != *f.Date {
		return false
	}
	if f.Status != nil && snap.Status != *f.Status {
		return false
	}
	return true
}

func restore(snap booking.Snapshot) (*booking.Booking, error) {
	b, err := booking.FromSnapshot(snap)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking "+snap.ID.String(), err)
	}
	return b, nil
}
