package wealthdash

import (
	"log"

	"github.com/Ray-XRay/wealthdash-google/kvstore"
)

// KVSaver persists snapshots into a key-value blob store under SnapshotKey.
type KVSaver struct {
	KV *kvstore.KV
}

// SaveSnapshot writes the snapshot blob. Part of the Saver interface.
func (s KVSaver) SaveSnapshot(snap *Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	return s.KV.Put(SnapshotKey, data)
}

// DropSnapshot removes the snapshot blob. Part of the Saver interface.
func (s KVSaver) DropSnapshot() error {
	return s.KV.Delete(SnapshotKey)
}

// OpenStore restores the store from the blob store, or starts empty when no
// snapshot (or only an unreadable one) exists. Reading is as fail-safe as
// writing: an I/O error degrades to an empty store with a warning from the
// decoder, never a startup failure.
func OpenStore(kv *kvstore.KV) *Store {
	saver := KVSaver{KV: kv}
	data, ok, err := kv.Get(SnapshotKey)
	if err != nil {
		log.Printf("could not read snapshot, starting empty: %v", err)
		return NewStore(saver)
	}
	if !ok {
		return NewStore(saver)
	}
	return NewStoreFromSnapshot(saver, DecodeSnapshot(data))
}
