package mongostore

import (
	"context"
	"errors"
	"strings"
	"time"

	"appointment-booking/internal/domain/booking"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName  = "bookings"
	activeSlotIndex = "active_slot_uniq"
)

type bookingDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Date      string    `bson:"date"`
	Slot      string    `bson:"slot"`
	Label     string    `bson:"label"`
	Notes     string    `bson:"notes"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// BookingStore keeps bookings in a MongoDB collection. A partial unique index
// over (date, slot) restricted to booked documents rejects double admission.
type BookingStore struct {
	coll *mongo.Collection
}

var _ shared.BookingStore = (*BookingStore)(nil)

func NewBookingStore(db *mongo.Database) *BookingStore {
	return &BookingStore{coll: db.Collection(CollectionName)}
}

func (s *BookingStore) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName(activeSlotIndex).
				SetPartialFilterExpression(bson.M{"status": booking.StatusBooked.String()}),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "date", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().SetName("email_date_slot_idx"),
		},
	}

	if _, err := s.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return infra.WrapRepoErr("failed to create booking indexes", err)
	}
	return nil
}

func (s *BookingStore) Insert(ctx context.Context, b *booking.Booking) error {
	_, err := s.coll.InsertOne(ctx, toDoc(b.Snapshot()))
	if err != nil {
		return classifyWriteErr("failed to insert booking", err)
	}
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var doc bookingDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return fromDoc(doc)
}

func (s *BookingStore) Find(ctx context.Context, filter shared.BookingFilter) ([]*booking.Booking, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "slot", Value: 1},
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := s.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err)
	}

	out := make([]*booking.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *BookingStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to booking.Status,
	at time.Time,
) (*booking.Booking, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": to.String(), "updatedAt": at}}

	var doc bookingDoc
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String(), "status": from.String()}, update, opts).Decode(&doc)
	if err == nil {
		return fromDoc(doc)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, classifyWriteErr("failed to update booking status", err)
	}

	n, countErr := s.coll.CountDocuments(ctx, bson.M{"_id": id.String()})
	if countErr != nil {
		return nil, infra.WrapRepoErr("failed to get booking", countErr)
	}
	if n == 0 {
		return nil, infra.WrapRepoErr("booking "+id.String()+" not found", nil, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("booking "+id.String()+" is not "+from.String(), nil, infra.KindConflict)
}

func buildFilter(f shared.BookingFilter) bson.M {
	filter := bson.M{}
	if f.Email != nil {
		filter["email"] = *f.Email
	}
	if f.Date != nil {
		filter["date"] = *f.Date
	}
	if f.Status != nil {
		filter["status"] = f.Status.String()
	}
	return filter
}

// classifyWriteErr maps duplicate keys on the active-slot index to a conflict.
// Mongo reports the index name only inside the error message.
func classifyWriteErr(msg string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		var we mongo.WriteException
		if errors.As(err, &we) && mentionsIndex(we, activeSlotIndex) {
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
		var ce mongo.CommandError
		if errors.As(err, &ce) && strings.Contains(ce.Message, activeSlotIndex) {
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}

func mentionsIndex(we mongo.WriteException, index string) bool {
	for _, e := range we.WriteErrors {
		if strings.Contains(e.Message, index) {
			return true
		}
	}
	return false
}

func toDoc(s booking.Snapshot) bookingDoc {
	return bookingDoc{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.Email,
		Date:      s.Date,
		Slot:      s.Slot,
		Label:     s.Label,
		Notes:     s.Notes,
		Status:    s.Status.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func fromDoc(doc bookingDoc) (*booking.Booking, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking id "+doc.ID, err)
	}
	b, err := booking.FromSnapshot(booking.Snapshot{
		ID:        id,
		Name:      doc.Name,
		Email:     doc.Email,
		Date:      doc.Date,
		Slot:      doc.Slot,
		Label:     doc.Label,
		Notes:     doc.Notes,
		Status:    booking.Status(doc.Status),
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking "+doc.ID, err)
	}
	return b, nil
}
