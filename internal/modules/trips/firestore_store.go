package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tripsCollection = "trips"

// tripDoc is the Firestore shape of a Trip. Nested documents are kept as
// generic maps so they round-trip without per-field firestore tags.
type tripDoc struct {
	UserID      string                 `firestore:"userId"`
	UserEmail   string                 `firestore:"userEmail"`
	UserName    string                 `firestore:"userName"`
	Choice      map[string]interface{} `firestore:"userChoice"`
	Plan        map[string]interface{} `firestore:"tripData"`
	TotalBudget map[string]string      `firestore:"totalBudget"`
	Status      string                 `firestore:"status"`
	CreatedAt   time.Time              `firestore:"createdAt"`
	UpdatedAt   time.Time              `firestore:"lastModified"`
}

// FirestoreStore stores one document per trip in the trips collection.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Save(ctx context.Context, t *Trip) error {
	doc := tripDoc{
		UserID:      t.UserID,
		UserEmail:   t.UserEmail,
		UserName:    t.UserName,
		TotalBudget: t.TotalBudget,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if err := toMap(t.Choice, &doc.Choice); err != nil {
		return fmt.Errorf("encode choice: %w", err)
	}
	if err := toMap(t.Plan, &doc.Plan); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	_, err := s.client.Collection(tripsCollection).Doc(t.ID).Set(ctx, doc)
	return err
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (*Trip, error) {
	snap, err := s.client.Collection(tripsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromSnapshot(snap)
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID string) ([]*Trip, error) {
	iter := s.client.Collection(tripsCollection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var out []*Trip
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	// Sorted here to avoid requiring a composite index.
	sortNewestFirst(out)
	return out, nil
}

func fromSnapshot(snap *firestore.DocumentSnapshot) (*Trip, error) {
	var doc tripDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode trip %s: %w", snap.Ref.ID, err)
	}
	t := &Trip{
		ID:          snap.Ref.ID,
		UserID:      doc.UserID,
		UserEmail:   doc.UserEmail,
		UserName:    doc.UserName,
		TotalBudget: doc.TotalBudget,
		Status:      doc.Status,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if err := fromMap(doc.Choice, &t.Choice); err != nil {
		return nil, fmt.Errorf("decode choice: %w", err)
	}
	if err := fromMap(doc.Plan, &t.Plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return t, nil
}

func toMap(v any, out *map[string]interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func fromMap(m map[string]interface{}, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
