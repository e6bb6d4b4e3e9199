package orchestrator

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"intake-engine/internal/backend"
	"intake-engine/internal/mapper"
	"intake-engine/internal/model"
	"intake-engine/internal/session"
	"intake-engine/internal/validate"
)

// State of the save machine. Transitions: Idle → Validating → Submitting →
// (Success | Failed) → Idle. Success and Failed are reported on the Result;
// the machine itself always lands back on Idle.
type State string

const (
	StateIdle       State = "Idle"
	StateValidating State = "Validating"
	StateSubmitting State = "Submitting"
)

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
	OutcomeBlocked = "BLOCKED"
)

// DefaultCooldown is the minimum spacing between two accepted submissions.
// The form offers no other debouncing, so rapid double submits must not
// produce duplicate backend records.
const DefaultCooldown = 2000 * time.Millisecond

var ErrReadOnlySession = errors.New("view sessions cannot submit")

// Result reports one pass through the machine. Accepted is false only when
// the duplicate-submit guard skipped the attempt.
type Result struct {
	Accepted         bool
	Outcome          string
	ClientID         string
	NavigateBack     bool
	ValidationErrors []model.FieldError
	FirstErrorPath   string
	Err              error
}

// Orchestrator runs the save sequence for form sessions. Calls within a save
// are issued strictly one after another; the first rejection aborts the tail.
// There is no cancellation, rollback, or automatic retry.
type Orchestrator struct {
	backend  backend.Service
	cooldown time.Duration
	now      func() time.Time

	mu         sync.Mutex
	state      State
	submitting bool
	lastSubmit time.Time
}

func New(svc backend.Service, cooldown time.Duration) *Orchestrator {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Orchestrator{
		backend:  svc,
		cooldown: cooldown,
		now:      time.Now,
		state:    StateIdle,
	}
}

// State returns the current machine state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Submit runs one save attempt for the session. Duplicate submissions are
// skipped silently: logged, never surfaced to the user.
func (o *Orchestrator) Submit(ctx context.Context, sess *session.Session) Result {
	if sess.Mode == model.ModeView {
		return Result{Err: ErrReadOnlySession}
	}

	o.mu.Lock()
	now := o.now()
	if o.submitting {
		o.mu.Unlock()
		log.Printf("submit skipped for session %s: submission already in flight", sess.ID)
		return Result{}
	}
	if !o.lastSubmit.IsZero() && now.Sub(o.lastSubmit) < o.cooldown {
		o.mu.Unlock()
		log.Printf("submit skipped for session %s: %s since last accepted submit", sess.ID, now.Sub(o.lastSubmit))
		return Result{}
	}
	o.submitting = true
	o.lastSubmit = now
	o.state = StateValidating
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.submitting = false
		o.state = StateIdle
		o.mu.Unlock()
	}()

	doc := sess.Document()

	fieldErrs, _ := validate.Client(doc)
	if len(fieldErrs) > 0 {
		return Result{
			Accepted:         true,
			Outcome:          OutcomeBlocked,
			ValidationErrors: fieldErrs,
			FirstErrorPath:   fieldErrs[0].Path,
		}
	}

	o.setState(StateSubmitting)
	payload := mapper.BuildSavePayload(doc, sess.Mode)

	if sess.Mode == model.ModeCreate {
		return o.create(ctx, payload)
	}
	return o.edit(ctx, sess.ClientID, payload)
}

func (o *Orchestrator) create(ctx context.Context, payload mapper.SavePayload) Result {
	rec, err := o.backend.CreateClient(ctx, payload.Combined)
	if err != nil {
		log.Printf("create failed: %v", err)
		return Result{Accepted: true, Outcome: OutcomeFailure, Err: err}
	}
	id, _ := rec["_id"].(string)
	return Result{Accepted: true, Outcome: OutcomeSuccess, ClientID: id, NavigateBack: true}
}

// edit decomposes the save: four applicant subsection calls, then the four
// co-applicant calls when the co-applicant is live and known to the backend,
// then the whole-record update. Earlier calls have already taken effect when
// a later one fails.
func (o *Orchestrator) edit(ctx context.Context, clientID string, payload mapper.SavePayload) Result {
	fail := func(err error) Result {
		log.Printf("edit save aborted for client %s: %v", clientID, err)
		return Result{Accepted: true, Outcome: OutcomeFailure, ClientID: clientID, Err: err}
	}

	for _, sub := range backend.SubsectionOrder {
		if err := o.backend.UpdateSubsection(ctx, clientID, model.PersonApplicant, sub, subsectionBody(payload.Applicant, sub)); err != nil {
			return fail(err)
		}
	}

	coViaSubsections := payload.IncludeCoApplicant && payload.CoApplicant.ID != ""
	if coViaSubsections {
		for _, sub := range backend.SubsectionOrder {
			if err := o.backend.UpdateSubsection(ctx, clientID, model.PersonCoApplicant, sub, subsectionBody(payload.CoApplicant, sub)); err != nil {
				return fail(err)
			}
		}
	}

	update := payload.Record
	if !coViaSubsections {
		// Either the co-applicant collapsed to the void marker or it was
		// added during this edit and has no id yet; both ride the
		// whole-record update so the backend never keeps stale data.
		update = make(map[string]any, len(payload.Record)+1)
		for k, v := range payload.Record {
			update[k] = v
		}
		update["coapplicant"] = payload.CoApplicant.Combined
	}
	if err := o.backend.UpdateClient(ctx, clientID, update); err != nil {
		return fail(err)
	}

	return Result{Accepted: true, Outcome: OutcomeSuccess, ClientID: clientID}
}

func subsectionBody(p mapper.PersonPayload, sub backend.Subsection) map[string]any {
	switch sub {
	case backend.SubsectionBasicInfo:
		return p.BasicInfo
	case backend.SubsectionAddress:
		return p.Address
	case backend.SubsectionEmployment:
		return p.Employment
	case backend.SubsectionDemographics:
		return p.Demographics
	}
	return nil
}
