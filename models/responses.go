package models

// TombstoneListResponse is returned by the tombstone listing endpoint.
// Expired tombstones are purged before the list is assembled, so entries
// past their TTL are never surfaced here.
type TombstoneListResponse struct {
	// Tombstones is the full unexpired tombstone set.
	Tombstones []Tombstone `json:"tombstones"`

	// Count is the total number of entries in Tombstones.
	Count int `json:"count"`
}
