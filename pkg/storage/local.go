package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store persists uploaded objects and resolves their public URLs.
type Store interface {
	Save(key string, r io.Reader) (string, error)
	Delete(key string) error
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
}

// LocalStore keeps objects on disk under a root directory. Keys are
// slash-separated paths whose first segment is the owning user ID.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &LocalStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStore) Save(key string, r io.Reader) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create object dir for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create object %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write object %s: %w", key, err)
	}

	return s.PublicURL(key), nil
}

func (s *LocalStore) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("object %s not found", key)
		}
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func (s *LocalStore) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// KeyFromURL maps a public URL back to its storage key.
func (s *LocalStore) KeyFromURL(url string) (string, bool) {
	prefix := s.baseURL + "/"
	idx := strings.Index(url, prefix)
	if idx < 0 {
		return "", false
	}
	key := url[idx+len(prefix):]
	if key == "" {
		return "", false
	}
	return key, true
}

// Root returns the directory objects are stored under, for static serving.
func (s *LocalStore) Root() string {
	return s.root
}

// resolve rejects keys that would escape the storage root
func (s *LocalStore) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(key))
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
