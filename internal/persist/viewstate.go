package persist

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/dshills/xlgrid/internal/session"
)

// ViewStore remembers where the cursor was in each workbook, keyed by the
// workbook's absolute path.
type ViewStore struct {
	d *diskv.Diskv
}

// OpenViewStore returns a store rooted at dir. The directory is created on
// first write.
func OpenViewStore(dir string) *ViewStore {
	return &ViewStore{d: diskv.New(diskv.Options{
		BasePath:          dir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	})}
}

// Load returns the saved state for the workbook at path. The boolean is
// false when nothing was saved.
func (s *ViewStore) Load(path string) (session.ViewState, bool, error) {
	key, err := viewKey(path)
	if err != nil {
		return session.ViewState{}, false, err
	}
	data, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return session.ViewState{}, false, nil
	}
	if err != nil {
		return session.ViewState{}, false, NewOperationError("read view state", path, err)
	}
	var vs session.ViewState
	if err := json.Unmarshal(data, &vs); err != nil {
		return session.ViewState{}, false, NewOperationError("read view state", path, err)
	}
	return vs, true, nil
}

// Save records vs for the workbook at path.
func (s *ViewStore) Save(path string, vs session.ViewState) error {
	key, err := viewKey(path)
	if err != nil {
		return err
	}
	data, err := json.Marshal(vs)
	if err != nil {
		return err
	}
	if err := s.d.Write(key, data); err != nil {
		return NewOperationError("write view state", path, err)
	}
	return nil
}

// Forget drops the saved state for path.
func (s *ViewStore) Forget(path string) error {
	key, err := viewKey(path)
	if err != nil {
		return err
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func viewKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:]), nil
}

// keyToPathTransform fans keys out over two-character directories.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{key[:2]},
		FileName: key,
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	return pk.FileName
}
