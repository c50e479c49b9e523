package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"symposium_backend/internals/errs"
	"symposium_backend/internals/features/symposium/sessions/model"
)

// Filter narrows session queries.
type Filter struct {
	Date          string
	Type          string
	Status        string
	AvailableOnly bool
}

// Repository is the store surface the session service needs. The GORM
// implementation lives in the repository package; tests use an in-memory one.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.PresentationSessionModel, error)
	Search(ctx context.Context, f Filter) ([]model.PresentationSessionModel, error)
	Create(ctx context.Context, m *model.PresentationSessionModel) error
	Save(ctx context.Context, m *model.PresentationSessionModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountRegistrationsBySession(ctx context.Context, id uuid.UUID) (int64, error)
}

// SessionService owns session lifecycle and slot accounting. All mutations of
// a session's registered/status pair run under that session's lock.
type SessionService struct {
	repo Repository

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewSessionService(repo Repository) *SessionService {
	return &SessionService{
		repo:  repo,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *SessionService) lockSession(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// validate checks field constraints in a fixed order and reports the first
// offending field. No partial writes happen on failure.
func (s *SessionService) validate(m *model.PresentationSessionModel) error {
	if strings.TrimSpace(m.PresentationSessionDate) == "" {
		return errs.Validation("presentation_session_date", "date is required")
	}
	if strings.TrimSpace(m.PresentationSessionStartTime) == "" {
		return errs.Validation("presentation_session_start_time", "start time is required")
	}
	if strings.TrimSpace(m.PresentationSessionEndTime) == "" {
		return errs.Validation("presentation_session_end_time", "end time is required")
	}
	if strings.TrimSpace(m.PresentationSessionVenue) == "" {
		return errs.Validation("presentation_session_venue", "venue is required")
	}
	if !model.ValidSessionType(m.PresentationSessionType) {
		return errs.Validation("presentation_session_type", "type must be ORAL or POSTER")
	}
	if m.PresentationSessionCapacity <= 0 {
		return errs.Validation("presentation_session_capacity", "capacity must be greater than zero")
	}
	// HH:MM strings compare correctly lexicographically.
	if m.PresentationSessionStartTime >= m.PresentationSessionEndTime {
		return errs.Validation("presentation_session_start_time", "start time must be before end time")
	}
	return nil
}

func (s *SessionService) Create(ctx context.Context, m *model.PresentationSessionModel) error {
	if err := s.validate(m); err != nil {
		return err
	}
	if m.PresentationSessionStatus == "" {
		m.PresentationSessionStatus = model.SessionStatusOpen
	}
	return s.repo.Create(ctx, m)
}

func (s *SessionService) Update(ctx context.Context, m *model.PresentationSessionModel) error {
	if err := s.validate(m); err != nil {
		return err
	}

	unlock := s.lockSession(m.PresentationSessionID)
	defer unlock()

	stored, err := s.repo.FindByID(ctx, m.PresentationSessionID)
	if err != nil {
		return errs.NotFound("session", m.PresentationSessionID.String())
	}

	// Registered count and status are service-owned; an update never touches
	// them directly, but a capacity change may flip FULL/OPEN.
	m.PresentationSessionRegistered = stored.PresentationSessionRegistered
	m.PresentationSessionStatus = stored.PresentationSessionStatus
	if m.PresentationSessionCapacity < stored.PresentationSessionRegistered {
		return errs.Validation("presentation_session_capacity",
			"capacity cannot be lower than the current registered count")
	}
	s.syncFullStatus(m)

	return s.repo.Save(ctx, m)
}

func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*model.PresentationSessionModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("session", id.String())
	}
	return m, nil
}

func (s *SessionService) Search(ctx context.Context, f Filter) ([]model.PresentationSessionModel, error) {
	return s.repo.Search(ctx, f)
}

// ChangeStatus is the coordinator override. FULL cannot be set by hand.
func (s *SessionService) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*model.PresentationSessionModel, error) {
	if !model.ValidSessionStatus(status) || status == model.SessionStatusFull {
		return nil, errs.Validation("presentation_session_status",
			"status must be OPEN, CLOSED or REQUIRES_APPROVAL")
	}

	unlock := s.lockSession(id)
	defer unlock()

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("session", id.String())
	}

	m.PresentationSessionStatus = status
	// Reopening a session that is already at capacity snaps straight to FULL.
	s.syncFullStatus(m)

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete refuses to remove a session that still has registrations unless the
// caller confirmed. A confirmed delete orphans those registrations' session
// references; reconciling them is the caller's responsibility.
func (s *SessionService) Delete(ctx context.Context, id uuid.UUID, confirmed bool) (bool, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return false, errs.NotFound("session", id.String())
	}

	count, err := s.repo.CountRegistrationsBySession(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 && !confirmed {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// TryReserveSlot increments the registered count when the session is OPEN and
// has a free slot, flipping to FULL when the count reaches capacity. The
// availability check and the increment happen under the session lock, so an
// over-capacity increment is impossible regardless of caller discipline.
func (s *SessionService) TryReserveSlot(ctx context.Context, id uuid.UUID) (*model.PresentationSessionModel, error) {
	unlock := s.lockSession(id)
	defer unlock()

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("session", id.String())
	}
	if !m.HasAvailableSlots() {
		return nil, errs.Capacity("session has no available slots or is not open")
	}

	m.PresentationSessionRegistered++
	s.syncFullStatus(m)

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ReleaseSlot decrements the registered count (floor zero). A FULL session
// drops back to OPEN; CLOSED and REQUIRES_APPROVAL are never resurrected.
func (s *SessionService) ReleaseSlot(ctx context.Context, id uuid.UUID) (*model.PresentationSessionModel, error) {
	unlock := s.lockSession(id)
	defer unlock()

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("session", id.String())
	}

	if m.PresentationSessionRegistered > 0 {
		m.PresentationSessionRegistered--
	}
	if m.PresentationSessionStatus == model.SessionStatusFull &&
		m.PresentationSessionRegistered < m.PresentationSessionCapacity {
		m.PresentationSessionStatus = model.SessionStatusOpen
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SessionService) HasAvailableSlots(ctx context.Context, id uuid.UUID) (bool, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, errs.NotFound("session", id.String())
	}
	return m.HasAvailableSlots(), nil
}

// syncFullStatus keeps FULL ⟷ registered≥capacity consistent for OPEN/FULL
// sessions without touching coordinator overrides.
func (s *SessionService) syncFullStatus(m *model.PresentationSessionModel) {
	switch m.PresentationSessionStatus {
	case model.SessionStatusOpen:
		if m.PresentationSessionRegistered >= m.PresentationSessionCapacity {
			m.PresentationSessionStatus = model.SessionStatusFull
		}
	case model.SessionStatusFull:
		if m.PresentationSessionRegistered < m.PresentationSessionCapacity {
			m.PresentationSessionStatus = model.SessionStatusOpen
		}
	}
}
