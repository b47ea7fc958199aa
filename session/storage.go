package session

// SlotName is the name of the single slot holding the serialized token.
const SlotName = "crm_auth_token"

// Storage is a single named, string-valued slot. Absence means logged out.
type Storage interface {
	// Load returns the stored token, or ok=false when the slot is empty.
	Load() (token string, ok bool, err error)

	// Save overwrites the slot. Last writer wins.
	Save(token string) error

	// Remove empties the slot. Removing an empty slot is not an error.
	Remove() error
}
