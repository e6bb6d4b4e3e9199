package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"intake-engine/internal/formdoc"
	"intake-engine/internal/mapper"
	"intake-engine/internal/model"
)

var (
	ErrEmptyPath         = errors.New("field path must not be empty")
	ErrReadOnly          = errors.New("session is read-only")
	ErrUnknownCollection = errors.New("unknown row collection")
)

// Session owns the live form document for one client case. All reads and
// writes go through the session; the document itself is replaced, never
// mutated, on every write.
type Session struct {
	ID       string
	Mode     model.Mode
	ClientID string

	mu  sync.Mutex
	doc formdoc.Doc
}

func New(mode model.Mode, clientID string, doc formdoc.Doc) *Session {
	return &Session{
		ID:       uuid.New().String(),
		Mode:     mode,
		ClientID: clientID,
		doc:      doc,
	}
}

// Document returns the current document root. Callers treat it as read-only;
// Apply produces a fresh root for every write.
func (s *Session) Document() formdoc.Doc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Apply writes one field. Two special cases ride along with the plain
// deep-path write:
//   - unchecking coapplicant.include_coapplicant voids the whole co-applicant
//     subtree so stale data can never reach the backend;
//   - liability taxes/hoi writes recompute that row's total_esc, which is
//     derived and cannot be written directly.
func (s *Session) Apply(path formdoc.Path, value any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if s.Mode == model.ModeView {
		return ErrReadOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(path) == 2 && path[0] == "coapplicant" && path[1] == "include_coapplicant" {
		if on, ok := value.(bool); ok {
			s.toggleCoApplicant(on)
			return nil
		}
	}

	if len(path) == 3 && path[0] == "liabilities" && path[2] == "total_esc" {
		// Derived field: recompute from the row instead of trusting the caller.
		s.recomputeTotalEsc(path[1])
		return nil
	}

	s.doc = formdoc.Set(s.doc, path, value)

	if len(path) == 3 && path[0] == "liabilities" && (path[2] == "taxes" || path[2] == "hoi") {
		s.recomputeTotalEsc(path[1])
	}
	return nil
}

func (s *Session) toggleCoApplicant(on bool) {
	if !on {
		s.doc = formdoc.Set(s.doc, formdoc.Path{"coapplicant"}, map[string]any{"include_coapplicant": false})
		return
	}
	co, _ := s.doc["coapplicant"].(map[string]any)
	if len(co) <= 1 {
		fresh := mapper.NewPersonDoc()
		fresh["include_coapplicant"] = true
		s.doc = formdoc.Set(s.doc, formdoc.Path{"coapplicant"}, fresh)
		return
	}
	s.doc = formdoc.Set(s.doc, formdoc.Path{"coapplicant", "include_coapplicant"}, true)
}

func (s *Session) recomputeTotalEsc(index string) {
	row, ok := formdoc.Get(s.doc, formdoc.Path{"liabilities", index})
	if !ok {
		return
	}
	m, ok := row.(map[string]any)
	if !ok {
		return
	}
	total := mapper.TotalEsc(m["taxes"], m["hoi"])
	s.doc = formdoc.Set(s.doc, formdoc.Path{"liabilities", index, "total_esc"}, total)
}

// AddRow appends an all-blank row to one of the row collections. person is
// only consulted for household members.
func (s *Session) AddRow(collection string, person model.Person) error {
	if s.Mode == model.ModeView {
		return ErrReadOnly
	}

	var path formdoc.Path
	var row map[string]any
	switch collection {
	case model.CollectionHouseholdMembers:
		if !person.Valid() {
			return ErrUnknownCollection
		}
		path = formdoc.Path{string(person), "household_members"}
		row = model.NewHouseholdMember()
	case model.CollectionLiabilities:
		path = formdoc.Path{"liabilities"}
		row = model.NewLiability()
	case model.CollectionDrivers:
		path = formdoc.Path{"vehicle_coverage", "drivers"}
		row = model.NewDriver()
	default:
		return ErrUnknownCollection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := formdoc.Get(s.doc, path)
	list, _ := current.([]any)
	next := make([]any, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, row)
	s.doc = formdoc.Set(s.doc, path, next)
	return nil
}
