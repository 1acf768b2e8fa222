package entity

import "time"

// Photo is a metadata record for an uploaded image. StorageKey points at the
// blob in object storage; the row is only ever created after the blob write
// succeeded, so a Photo never references a missing object.
type Photo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StorageKey string    `json:"storageKey"`
	URL        string    `json:"url"`
	OwnerID    string    `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
}
