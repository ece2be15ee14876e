// Package store persists per-conversation token state.
//
// Two concerns are kept deliberately separate:
//
//   - Authenticated storage: snapshots are sealed with XChaCha20-Poly1305
//     under a key derived from an install secret. A modified or foreign
//     file fails to open (ErrSealBroken).
//   - Integrity stamping: the logical snapshot fields are digested with a
//     keyed BLAKE3 hash bound to the install identifier. A snapshot that
//     opens cleanly but was written by a different install, or whose fields
//     were altered before sealing, fails verification (ErrStampMismatch).
//
// FileStore writes one sealed file per conversation, atomically (temp file,
// fsync, rename). MemStore is an in-memory implementation for tests.
//
//	st, err := store.NewFileStore(dir, installKey, installID)
//	if err != nil { ... }
//	err = st.Save(&store.Snapshot{ConversationID: "conv-1", TotalTokens: 420})
//	snap, err := st.Load("conv-1")
//
// Callers decide what a failed load means; the ledger package resets the
// conversation to default token state.
package store
