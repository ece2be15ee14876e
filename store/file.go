package store

import (
	"encoding/base32"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const snapshotExt = ".snap"

// filenameEncoding maps conversation ids to filesystem-safe names.
var filenameEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// FileStore persists one sealed snapshot file per conversation.
type FileStore struct {
	dir       string
	key       []byte
	installID string
}

// NewFileStore creates a store rooted at dir. The install key seals the
// snapshot files; the install identifier binds integrity stamps to this
// install, so snapshots copied from another install are rejected on load.
func NewFileStore(dir string, installKey []byte, installID string) (*FileStore, error) {
	key, err := deriveSealKey(installKey)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{dir: dir, key: key, installID: installID}, nil
}

// Save seals and writes the snapshot, replacing any previous one. The
// snapshot's Stamp is computed here; UpdatedAt is filled in when zero.
func (s *FileStore) Save(snap *Snapshot) error {
	if snap.ConversationID == "" {
		return fmt.Errorf("snapshot has no conversation id")
	}
	if snap.UpdatedAt == 0 {
		snap.UpdatedAt = time.Now().Unix()
	}
	snap.Stamp = ComputeStamp(snap, s.installID)

	plaintext, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	blob, err := seal(s.key, plaintext)
	if err != nil {
		return fmt.Errorf("seal snapshot: %w", err)
	}
	return atomicWriteFile(s.path(snap.ConversationID), blob, 0o600)
}

// Load reads, opens, and verifies the snapshot for the conversation.
func (s *FileStore) Load(conversationID string) (*Snapshot, error) {
	blob, err := os.ReadFile(s.path(conversationID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	plaintext, err := open(s.key, blob)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(plaintext, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSealBroken, err)
	}

	// A snapshot filed under one conversation id but naming another means
	// the files were shuffled; treat it like any other integrity failure.
	if snap.ConversationID != conversationID || !VerifyStamp(&snap, s.installID) {
		return nil, ErrStampMismatch
	}
	return &snap, nil
}

// Delete removes the conversation's snapshot file, if any.
func (s *FileStore) Delete(conversationID string) error {
	err := os.Remove(s.path(conversationID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// List returns the conversation ids with stored snapshots.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		raw, err := filenameEncoding.DecodeString(strings.TrimSuffix(name, snapshotExt))
		if err != nil {
			continue // foreign file in the store directory
		}
		ids = append(ids, string(raw))
	}
	return ids, nil
}

// Close implements Store. FileStore holds no open resources.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(conversationID string) string {
	return filepath.Join(s.dir, filenameEncoding.EncodeToString([]byte(conversationID))+snapshotExt)
}

// atomicWriteFile writes data via a temp file in the same directory, fsyncs,
// and renames into place, so a crash leaves either the old file or the new
// complete one.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	cleanup := func() {
		f.Close()
		os.Remove(tmp)
	}
	if _, err := f.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := f.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}
