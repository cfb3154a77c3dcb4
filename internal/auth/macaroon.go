package auth

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/macaroon.v2"
)

const (
	RootKeyFile        = "rootKey.key"
	AccessMacaroonFile = "access.macaroon"

	macaroonLocation = "peerswap-api"
	rootKeySize      = 32
)

// Verifier checks a binary-encoded macaroon.
type Verifier interface {
	Verify(raw []byte) error
}

// Store holds the root key and the access macaroon minted from it.
type Store struct {
	dir     string
	rootKey []byte
	access  *macaroon.Macaroon
}

// LoadOrCreate reads the root key and access macaroon from dir, generating
// whichever is missing. A new root key always gets a new access macaroon.
func LoadOrCreate(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create macaroon dir: %w", err)
	}

	s := &Store{dir: dir}
	keyPath := filepath.Join(dir, RootKeyFile)
	macPath := filepath.Join(dir, AccessMacaroonFile)

	rootKey, err := os.ReadFile(keyPath)
	switch {
	case err == nil && len(rootKey) == rootKeySize:
		s.rootKey = rootKey
	case err == nil || os.IsNotExist(err):
		s.rootKey = make([]byte, rootKeySize)
		if _, err := rand.Read(s.rootKey); err != nil {
			return nil, fmt.Errorf("failed to generate root key: %w", err)
		}
		if err := os.WriteFile(keyPath, s.rootKey, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write root key: %w", err)
		}
		_ = os.Remove(macPath)
		log.Info("Generated macaroon root key", zap.String("path", keyPath))
	default:
		return nil, fmt.Errorf("failed to read root key: %w", err)
	}

	data, err := os.ReadFile(macPath)
	switch {
	case err == nil:
		m := new(macaroon.Macaroon)
		if err := m.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", macPath, err)
		}
		s.access = m
	case os.IsNotExist(err):
		m, err := s.mint()
		if err != nil {
			return nil, err
		}
		encoded, err := m.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("failed to encode access macaroon: %w", err)
		}
		if err := os.WriteFile(macPath, encoded, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write access macaroon: %w", err)
		}
		s.access = m
		log.Info("Generated access macaroon", zap.String("path", macPath))
	default:
		return nil, fmt.Errorf("failed to read access macaroon: %w", err)
	}

	if err := s.access.Verify(s.rootKey, rejectCaveats, nil); err != nil {
		return nil, fmt.Errorf("access macaroon does not match root key: %w", err)
	}
	return s, nil
}

func (s *Store) mint() (*macaroon.Macaroon, error) {
	m, err := macaroon.New(s.rootKey, []byte(uuid.New().String()), macaroonLocation, macaroon.V2)
	if err != nil {
		return nil, fmt.Errorf("failed to mint access macaroon: %w", err)
	}
	return m, nil
}

// Verify implements Verifier. The macaroon must be signed by the root key
// and carry no caveats.
func (s *Store) Verify(raw []byte) error {
	m := new(macaroon.Macaroon)
	if err := m.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMacaroon, err)
	}
	if err := m.Verify(s.rootKey, rejectCaveats, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMacaroon, err)
	}
	if !bytes.Equal(m.Id(), s.access.Id()) {
		return fmt.Errorf("%w: unknown identifier", ErrInvalidMacaroon)
	}
	return nil
}

// AccessMacaroon returns the binary access macaroon.
func (s *Store) AccessMacaroon() ([]byte, error) {
	return s.access.MarshalBinary()
}

// Dir returns the directory the store was loaded from.
func (s *Store) Dir() string {
	return s.dir
}

func rejectCaveats(caveat string) error {
	return fmt.Errorf("caveat %q not supported", caveat)
}
