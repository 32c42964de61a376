// Package fs implements filesystem fingerprinting for the discovery cache.
package fs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/base47/internal/core/ports"
)

var _ ports.Signer = (*Signer)(nil)

// Signer fingerprints glob listings with xxhash.
type Signer struct{}

// NewSigner creates a new Signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Signature hashes the names matching pattern under root.
// Names are taken relative to root, lowercased and sorted in natural order,
// so the result depends only on which entries exist.
// An unreadable root or a bad pattern hashes as an empty listing.
func (s *Signer) Signature(root, pattern string) string {
	return s.hashNames(s.listNames(root, pattern))
}

func (s *Signer) listNames(root, pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(root, match)
		if err != nil {
			rel = filepath.Base(match)
		}
		names = append(names, strings.ToLower(filepath.ToSlash(rel)))
	}
	domain.SortNatural(names)
	return names
}

func (s *Signer) hashNames(names []string) string {
	hasher := xxhash.New()
	for i, name := range names {
		if i > 0 {
			_, _ = hasher.Write([]byte{'|'})
		}
		_, _ = hasher.WriteString(name)
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
