package model

// Mode selects the save behavior for a session: Create issues one combined
// create call, Edit decomposes the save into per-subsection update calls,
// View never submits.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

func (m Mode) Valid() bool {
	return m == ModeCreate || m == ModeEdit || m == ModeView
}

// Client case status.
const (
	StatusActive   = "Active"
	StatusPending  = "Pending"
	StatusInactive = "Inactive"
)

// Liability debtor.
const (
	DebtorApplicant   = "Applicant"
	DebtorCoApplicant = "Co-Applicant"
	DebtorJoint       = "Joint"
)

// Liability escrow.
const (
	EscrowYes     = "Yes"
	EscrowNo      = "No"
	EscrowPartial = "Partial"
)

// Driver status on the vehicle coverage section.
const (
	DrivingLicensed  = "licensed"
	DrivingPermit    = "permit"
	DrivingNonDriver = "non-driver"
	DrivingSuspended = "suspended"
)

// Person selects which party a row or subsection call belongs to.
type Person string

const (
	PersonApplicant   Person = "applicant"
	PersonCoApplicant Person = "coapplicant"
)

func (p Person) Valid() bool {
	return p == PersonApplicant || p == PersonCoApplicant
}

// Row collections that support the blank-append action.
const (
	CollectionHouseholdMembers = "household_members"
	CollectionLiabilities      = "liabilities"
	CollectionDrivers          = "drivers"
)
