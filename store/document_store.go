// Package store holds the in-memory corpus of loaded review documents.
// Documents live only for the duration of one run; nothing is persisted.
package store

import (
	"sort"
	"sync"

	"github.com/reviewlens/reviewlens/model"
)

// DocumentStore maps internal numeric IDs to documents and groups them by
// restaurant. External (UUID) document IDs map to the internal IDs.
type DocumentStore struct {
	Mu                     sync.RWMutex
	Docs                   map[uint32]model.Document // Internal ID to full document
	ExternalIDtoInternalID map[string]uint32         // Loader-assigned UUID to internal uint32 ID
	ByRestaurant           map[string][]uint32       // Group key to internal IDs, insertion order
	NextID                 uint32
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs:                   make(map[uint32]model.Document),
		ExternalIDtoInternalID: make(map[string]uint32),
		ByRestaurant:           make(map[string][]uint32),
	}
}

// Add inserts a document and returns its internal ID. A document whose
// external ID is already present is replaced in place, keeping its
// internal ID and group position.
func (ds *DocumentStore) Add(doc model.Document) uint32 {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()

	if existing, ok := ds.ExternalIDtoInternalID[doc.ID]; ok {
		ds.Docs[existing] = doc
		return existing
	}

	id := ds.NextID
	ds.NextID++
	ds.Docs[id] = doc
	ds.ExternalIDtoInternalID[doc.ID] = id
	ds.ByRestaurant[doc.Restaurant] = append(ds.ByRestaurant[doc.Restaurant], id)
	return id
}

// Get returns the document for an external ID.
func (ds *DocumentStore) Get(externalID string) (model.Document, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	internalID, ok := ds.ExternalIDtoInternalID[externalID]
	if !ok {
		return model.Document{}, false
	}
	doc, ok := ds.Docs[internalID]
	return doc, ok
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.Docs)
}

// Restaurants returns all group keys sorted by name.
func (ds *DocumentStore) Restaurants() []string {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	names := make([]string, 0, len(ds.ByRestaurant))
	for name := range ds.ByRestaurant {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocumentsFor returns a restaurant's documents in insertion order.
func (ds *DocumentStore) DocumentsFor(restaurant string) []model.Document {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	ids := ds.ByRestaurant[restaurant]
	docs := make([]model.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := ds.Docs[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs
}
