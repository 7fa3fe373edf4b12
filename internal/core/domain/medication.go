package domain

import "time"

// Medication is the sole persisted entity: a single tracked prescription.
type Medication struct {
	// ID is the unique identifier, assigned by the repository when the
	// record is added. Immutable and never reused.
	ID string `json:"id"`

	// Name is the display name, e.g. "TYLENOL 500 MG TABLET".
	Name string `json:"name"`

	// Dosage is free text, e.g. "500mg".
	Dosage string `json:"dosage"`

	// Frequency is a preset schedule or free text.
	Frequency Frequency `json:"frequency"`

	// LabelImage is an optional compressed JPEG of the scanned
	// prescription label.
	LabelImage []byte `json:"labelImage,omitempty"`

	// CreatedAt is when the record was added. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}
