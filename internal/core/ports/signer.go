package ports

// Signer fingerprints directory listings.
//
//go:generate mockgen -source=signer.go -destination=mocks/mock_signer.go -package=mocks
type Signer interface {
	// Signature hashes the entries matching pattern under root.
	// Equal sets of names yield equal signatures regardless of order or case.
	Signature(root, pattern string) string
}
