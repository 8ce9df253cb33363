package domain

import "time"

// PersonalInfo holds the owner details of a CV.
// Only FullName takes part in search.
type PersonalInfo struct {
	// FullName is the document owner's name.
	FullName string

	// Email is the owner's contact address.
	Email string

	// Phone is the owner's contact number.
	Phone string
}

// CV is one résumé document in the user's collection.
type CV struct {
	// ID is the opaque unique identifier assigned by the store.
	// It never changes for the lifetime of the record.
	ID string

	// Title is the display label.
	Title string

	// PersonalInfo holds the owner details.
	PersonalInfo PersonalInfo

	// CreatedAt is when the CV was first saved.
	CreatedAt time.Time

	// LastModified is updated whenever the CV changes. Display only.
	LastModified time.Time
}

// DisplayTitle returns the title, falling back to the ID for untitled CVs.
func (c CV) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}
