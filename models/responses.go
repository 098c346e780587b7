package models

// StatesResponse contains the server-side state of every contact that
// belongs to the user. The client uses these descriptors to build a sync
// plan: download missing records, push local changes, and drop records the
// server deleted.
type StatesResponse struct {
	// ContactStates is the list of lightweight state descriptors. Each
	// entry carries the version and deletion flag — enough for the client
	// to decide whether a full fetch or push is needed.
	ContactStates []ContactState `json:"contact_states"`

	// Length is the total number of entries in ContactStates.
	Length int `json:"length"`
}

// DownloadResponse returns the full records requested by a DownloadRequest.
type DownloadResponse struct {
	Contacts []ContactRecord `json:"contacts"`
	Length   int             `json:"length"`
}

// APIError is the JSON error body returned by the server on failures.
type APIError struct {
	Error string `json:"error"`
}
