package backend

import (
	"context"

	"intake-engine/internal/model"
)

// Subsection names the per-party update targets of the edit-mode save.
type Subsection string

const (
	SubsectionBasicInfo    Subsection = "basic-info"
	SubsectionAddress      Subsection = "address"
	SubsectionEmployment   Subsection = "employment"
	SubsectionDemographics Subsection = "demographics"
)

// SubsectionOrder is the fixed sequence the save orchestration issues per
// party: basic info, address, employment, demographics.
var SubsectionOrder = []Subsection{
	SubsectionBasicInfo,
	SubsectionAddress,
	SubsectionEmployment,
	SubsectionDemographics,
}

// Service is the opaque CRM backend the intake form loads from and saves to.
// Transport, auth and storage all live behind this interface.
type Service interface {
	// FetchClient returns the raw backend record for one client case.
	FetchClient(ctx context.Context, id string) (map[string]any, error)

	// CreateClient accepts the combined create payload and returns the
	// created record.
	CreateClient(ctx context.Context, payload map[string]any) (map[string]any, error)

	// UpdateClient applies the whole-record partial update.
	UpdateClient(ctx context.Context, id string, update map[string]any) error

	// UpdateSubsection applies one per-party partial update. The
	// person × subsection matrix yields the eight targeted update calls of
	// the edit-mode save.
	UpdateSubsection(ctx context.Context, clientID string, person model.Person, sub Subsection, data map[string]any) error

	// CreateLiability registers one liability row independent of the main
	// save flow.
	CreateLiability(ctx context.Context, clientID string, row map[string]any) error
}
