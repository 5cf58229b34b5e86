package inventory

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// SchemaVersion is the version written into every persisted snapshot
const SchemaVersion = 1

// ErrUnsupportedSchema is returned for snapshots written by a newer release
var ErrUnsupportedSchema = errors.New("unsupported snapshot schema version")

// Snapshot is the persisted layout of the whole inventory state
type Snapshot struct {
	SchemaVersion   int                    `json:"schemaVersion"`
	Products        []domain.Product       `json:"products"`
	Sales           []domain.Sale          `json:"sales"`
	IncomingHistory []domain.IncomingEntry `json:"incomingHistory"`
}

// EncodeSnapshot serializes the state at the current schema version
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	snap.SchemaVersion = SchemaVersion
	normalize(&snap)

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted blob, migrating older layouts forward
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var header struct {
		SchemaVersion *int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot header: %w", err)
	}

	version := 0
	if header.SchemaVersion != nil {
		version = *header.SchemaVersion
	}
	if version > SchemaVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedSchema, version)
	}

	payload := data
	for version < SchemaVersion {
		migrate, ok := migrations[version]
		if !ok {
			return Snapshot{}, fmt.Errorf("%w: no migration from %d", ErrUnsupportedSchema, version)
		}
		var err error
		payload, err = migrate(payload)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to migrate snapshot from version %d: %w", version, err)
		}
		version++
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	normalize(&snap)
	return snap, nil
}

// migrations maps a schema version to the step that upgrades it by one
var migrations = map[int]func([]byte) ([]byte, error){
	0: migrateV0,
}

// migrateV0 handles unversioned blobs: either the bare state object or the
// browser persistence envelope {"state": {...}, "version": 0}.
func migrateV0(data []byte) ([]byte, error) {
	var envelope struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.State) > 0 && string(envelope.State) != "null" {
		data = envelope.State
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	snap.SchemaVersion = 1
	return json.Marshal(snap)
}

func normalize(snap *Snapshot) {
	if snap.Products == nil {
		snap.Products = []domain.Product{}
	}
	for i := range snap.Products {
		if snap.Products[i].Variants == nil {
			snap.Products[i].Variants = []domain.ProductVariant{}
		}
	}
	if snap.Sales == nil {
		snap.Sales = []domain.Sale{}
	}
	for i := range snap.Sales {
		if snap.Sales[i].Items == nil {
			snap.Sales[i].Items = []domain.SaleItem{}
		}
	}
	if snap.IncomingHistory == nil {
		snap.IncomingHistory = []domain.IncomingEntry{}
	}
}
