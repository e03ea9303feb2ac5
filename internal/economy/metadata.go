package economy

import (
	"sort"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// MetadataStore holds immutable character metadata. DNA hashes are not
// checked for uniqueness.
type MetadataStore struct {
	records map[uint64]entities.Metadata
}

// NewMetadataStore creates an empty store
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{records: make(map[uint64]entities.Metadata)}
}

// Create stores metadata for id
func (m *MetadataStore) Create(id uint64, name, dnaHash string) {
	m.records[id] = entities.Metadata{ID: id, Name: name, DNAHash: dnaHash}
}

// Get returns the metadata for id
func (m *MetadataStore) Get(id uint64) (entities.Metadata, error) {
	md, ok := m.records[id]
	if !ok {
		return entities.Metadata{}, errors.NotFoundf("metadata for character %d not found", id).
			WithMeta("character_id", id)
	}
	return md, nil
}

func (m *MetadataStore) snapshot() []entities.Metadata {
	out := make([]entities.Metadata, 0, len(m.records))
	for _, md := range m.records {
		out = append(out, md)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MetadataStore) restore(records []entities.Metadata) {
	m.records = make(map[uint64]entities.Metadata, len(records))
	for _, md := range records {
		m.records[md.ID] = md
	}
}
