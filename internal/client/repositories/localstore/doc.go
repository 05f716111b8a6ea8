// Package localstore provides the client's local key/value storage, the
// equivalent of browser local storage for the SocialHub terminal client.
//
// # Overview
//
// Values are opaque byte slices (JSON documents in practice) stored under
// string keys. Get returns (nil, nil) for a missing key. Update performs
// an atomic read-modify-write on a single key, which the account store
// uses to rewrite the flat cross-user account list without clobbering
// other users' entries.
//
// # Backends
//
//   - SQLiteStore: table local_storage in a goose-migrated SQLite file
//     (modernc.org/sqlite). Update runs in one transaction.
//   - FileStore:   one <key>.json file per key on an afero.Fs. Update is
//     serialized by a process-local mutex.
//   - RedisStore:  keys "socialhub:<key>" in Redis. Update uses
//     WATCH/MULTI and retries a bounded number of times on conflict.
//
// Typical Usage
//
//	store, err := localstore.Open(ctx, localstore.Options{Backend: localstore.BackendSQLite, DatabasePath: "socialhub.db"})
//	_ = store.Set(ctx, "user", b)
//	v, _ := store.Get(ctx, "user")
//	_ = store.Update(ctx, "socialAccounts", func(cur []byte) ([]byte, error) { ... })
package localstore
