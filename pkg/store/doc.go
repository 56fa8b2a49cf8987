// Package store provides a persistent key-value store backed by a single
// snapshot file.
//
// A Store keeps the authoritative mapping in memory and mirrors it to its
// file only when Sync is called. Opening a path that does not exist is a
// normal state and yields an empty store; the file is created by the first
// Sync. Any other failure to read the file, or contents that fail to decode,
// is returned to the caller.
//
//	s, err := store.Open[string]("store.kv")
//	if err != nil {
//		return err
//	}
//	s.Set("key1", "value1")
//	if err := s.Sync(); err != nil {
//		return err
//	}
//
// Sync always rewrites the whole file. A failed Sync leaves the in-memory
// mutation in place, so the file may be behind memory until a later Sync
// succeeds.
//
// AutoSync wraps a Store and syncs after every mutation.
//
// A Store is not safe for concurrent use.
package store
