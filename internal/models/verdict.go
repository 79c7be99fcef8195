package models

// Verdict is the outcome of an isolation check for one person.
type Verdict struct {
	// Person is the display name of the person checked.
	Person string

	// Email is the person's contact address, used to reach them.
	Email string

	// AnonymousID is the identifier the person shares in place of their name.
	AnonymousID string

	// Isolate is true when at least one flagged id is among the person's contacts.
	Isolate bool

	// Exposures are the flagged ids found in the contact set, sorted.
	Exposures []string

	// ContactCount is the size of the person's contact set at check time.
	ContactCount int
}

// ContactSummary lists everyone a person has been co-present with.
type ContactSummary struct {
	Person      string
	AnonymousID string

	// Contacts are anonymous ids in sorted order. The person's own id is never included.
	Contacts []string
}
