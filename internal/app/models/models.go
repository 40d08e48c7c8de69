package models

// RoleType defines the session role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStudent RoleType = "student"
)

// Registration status values carried by student records.
const (
	RegistrationCompleted  = "Completed"
	RegistrationPending    = "Pending"
	RegistrationNotStarted = "Not Started"
)

// DefaultTotalFees is the fee total assigned to students created without an
// explicit total.
const DefaultTotalFees = 50000
