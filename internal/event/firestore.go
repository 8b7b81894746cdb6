package event

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// DefaultCollection is the Firestore collection analysis documents land in.
const DefaultCollection = "audio_analyses"

// FirestoreStore persists analysis documents in a Firestore collection.
type FirestoreStore struct {
	Client     *firestore.Client
	Collection string
}

// Put writes the document, replacing any existing document with the same id.
func (s *FirestoreStore) Put(ctx context.Context, id string, doc map[string]any) error {
	collection := s.Collection
	if collection == "" {
		collection = DefaultCollection
	}
	if _, err := s.Client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore set %s/%s: %w", collection, id, err)
	}
	return nil
}
