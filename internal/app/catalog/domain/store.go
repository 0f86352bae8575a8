package domain

// Store is the tenant-owned catalog container. Stores are created and managed
// elsewhere; this service only reads them to authorize catalog changes.
type Store struct {
	ID      string
	OwnerID string
	Name    string
	Slug    string
}

// OwnedBy reports whether principalID owns the store.
func (s *Store) OwnedBy(principalID string) bool {
	return s != nil && principalID != "" && s.OwnerID == principalID
}
