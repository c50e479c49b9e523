package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"symposium_backend/internals/errs"
	"symposium_backend/internals/features/symposium/registrations/model"
	sessionModel "symposium_backend/internals/features/symposium/sessions/model"
	sessionService "symposium_backend/internals/features/symposium/sessions/service"
)

// Filter narrows registration queries. Limit/Offset of zero mean unpaged.
type Filter struct {
	StudentID *uuid.UUID
	SessionID *uuid.UUID
	Status    string
	Type      string
	Limit     int
	Offset    int
}

// Repository is the store surface the registration service needs.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error)
	Search(ctx context.Context, f Filter) ([]model.RegistrationModel, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Create(ctx context.Context, m *model.RegistrationModel) error
	Save(ctx context.Context, m *model.RegistrationModel) error
	BoardTaken(ctx context.Context, sessionID uuid.UUID, boardID string, exceptID uuid.UUID) (bool, error)
}

// Slots is the slice of the session service the registration service uses for
// slot bookkeeping.
type Slots interface {
	Get(ctx context.Context, id uuid.UUID) (*sessionModel.PresentationSessionModel, error)
	TryReserveSlot(ctx context.Context, id uuid.UUID) (*sessionModel.PresentationSessionModel, error)
	ReleaseSlot(ctx context.Context, id uuid.UUID) (*sessionModel.PresentationSessionModel, error)
}

var _ Slots = (*sessionService.SessionService)(nil)

// RegistrationService owns registration lifecycle and session assignment.
type RegistrationService struct {
	repo  Repository
	slots Slots
	clock func() time.Time
}

func NewRegistrationService(repo Repository, slots Slots) *RegistrationService {
	return &RegistrationService{repo: repo, slots: slots, clock: time.Now}
}

// validate checks the field constraints in a fixed order: student, title,
// abstract, supervisor, type. The first violation wins.
func (s *RegistrationService) validate(m *model.RegistrationModel) error {
	if m.RegistrationStudentID == uuid.Nil {
		return errs.Validation("registration_student_id", "student is required")
	}

	title := strings.TrimSpace(m.RegistrationResearchTitle)
	if title == "" {
		return errs.Validation("registration_research_title", "research title is required")
	}
	if utf8.RuneCountInString(title) > model.MaxResearchTitleLen {
		return errs.Validation("registration_research_title", "research title must be at most 200 characters")
	}

	abstract := strings.TrimSpace(m.RegistrationAbstract)
	if abstract == "" {
		return errs.Validation("registration_abstract", "abstract is required")
	}
	if utf8.RuneCountInString(abstract) > model.MaxAbstractLen {
		return errs.Validation("registration_abstract", "abstract must be at most 1000 characters")
	}

	if strings.TrimSpace(m.RegistrationSupervisorName) == "" {
		return errs.Validation("registration_supervisor_name", "supervisor name is required")
	}
	if !sessionModel.ValidSessionType(m.RegistrationPresentationType) {
		return errs.Validation("registration_presentation_type", "presentation type must be ORAL or POSTER")
	}

	// Poster boards make no sense for oral presentations.
	if m.RegistrationBoardID != nil &&
		m.RegistrationPresentationType != sessionModel.SessionTypePoster {
		return errs.Validation("registration_board_id", "board id applies to poster presentations only")
	}
	return nil
}

// Register creates a new registration. Client-supplied id, status and
// timestamps are discarded: every registration starts PENDING, unassigned,
// stamped now.
func (s *RegistrationService) Register(ctx context.Context, m *model.RegistrationModel) error {
	m.RegistrationID = uuid.Nil
	m.RegistrationStatus = model.RegistrationStatusPending
	m.RegistrationSessionID = nil
	m.RegistrationCreatedAt = s.clock().UTC()

	if err := s.validate(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

// Update rewrites the editable fields of an existing registration. Status,
// session assignment and createdAt are owned by the dedicated operations.
func (s *RegistrationService) Update(ctx context.Context, m *model.RegistrationModel) error {
	stored, err := s.repo.FindByID(ctx, m.RegistrationID)
	if err != nil {
		return errs.NotFound("registration", m.RegistrationID.String())
	}

	m.RegistrationStatus = stored.RegistrationStatus
	m.RegistrationSessionID = stored.RegistrationSessionID
	m.RegistrationCreatedAt = stored.RegistrationCreatedAt

	if err := s.validate(m); err != nil {
		return err
	}
	return s.repo.Save(ctx, m)
}

func (s *RegistrationService) Get(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("registration", id.String())
	}
	return m, nil
}

func (s *RegistrationService) Search(ctx context.Context, f Filter) ([]model.RegistrationModel, error) {
	return s.repo.Search(ctx, f)
}

func (s *RegistrationService) Count(ctx context.Context, f Filter) (int64, error) {
	return s.repo.Count(ctx, f)
}

// Approve sets the status directly. Slot bookkeeping stays with
// AssignToSession/UnassignFromSession.
func (s *RegistrationService) Approve(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error) {
	return s.setStatus(ctx, id, model.RegistrationStatusApproved)
}

func (s *RegistrationService) Reject(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error) {
	return s.setStatus(ctx, id, model.RegistrationStatusRejected)
}

func (s *RegistrationService) setStatus(ctx context.Context, id uuid.UUID, status string) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("registration", id.String())
	}
	m.RegistrationStatus = status
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Cancel releases the held session slot (when any) and marks the registration
// CANCELLED. The status change happens whether or not a session was held.
func (s *RegistrationService) Cancel(ctx context.Context, id uuid.UUID) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("registration", id.String())
	}

	if m.RegistrationSessionID != nil {
		if _, err := s.slots.ReleaseSlot(ctx, *m.RegistrationSessionID); err != nil {
			return nil, err
		}
		m.RegistrationSessionID = nil
	}
	m.RegistrationStatus = model.RegistrationStatusCancelled

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AssignToSession places a registration into a session. Re-assignment swaps
// the slot: the new session is reserved first (so a full target fails without
// side effects), then the old session's slot is released. Assigning a PENDING
// registration approves it as a side effect — the coordinator placing a talk
// into the programme is the approval.
func (s *RegistrationService) AssignToSession(ctx context.Context, registrationID, sessionID uuid.UUID) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, errs.NotFound("registration", registrationID.String())
	}

	target, err := s.slots.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Already in that session: nothing to move.
	if m.RegistrationSessionID != nil && *m.RegistrationSessionID == sessionID {
		return m, nil
	}

	if !target.HasAvailableSlots() {
		return nil, errs.Capacity("session has no available slots or is not open")
	}
	if m.RegistrationPresentationType != target.PresentationSessionType {
		return nil, errs.TypeMismatch("registration presentation type does not match session type")
	}

	if _, err := s.slots.TryReserveSlot(ctx, sessionID); err != nil {
		return nil, err
	}

	if m.RegistrationSessionID != nil {
		if _, err := s.slots.ReleaseSlot(ctx, *m.RegistrationSessionID); err != nil {
			return nil, err
		}
	}

	m.RegistrationSessionID = &sessionID
	if m.RegistrationStatus == model.RegistrationStatusPending {
		m.RegistrationStatus = model.RegistrationStatusApproved
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UnassignFromSession releases the held slot and clears the session
// reference. The registration status is untouched.
func (s *RegistrationService) UnassignFromSession(ctx context.Context, registrationID uuid.UUID) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, errs.NotFound("registration", registrationID.String())
	}

	if m.RegistrationSessionID != nil {
		if _, err := s.slots.ReleaseSlot(ctx, *m.RegistrationSessionID); err != nil {
			return nil, err
		}
		m.RegistrationSessionID = nil
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateFilePath records where the presentation file was stored. Upload and
// storage themselves live outside this service.
func (s *RegistrationService) UpdateFilePath(ctx context.Context, id uuid.UUID, path string) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("registration", id.String())
	}

	path = strings.TrimSpace(path)
	if path == "" {
		m.RegistrationFilePath = nil
	} else {
		m.RegistrationFilePath = &path
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateBoardID allocates a poster board. The board must be free within the
// assigned session.
func (s *RegistrationService) UpdateBoardID(ctx context.Context, id uuid.UUID, boardID string) (*model.RegistrationModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NotFound("registration", id.String())
	}

	if m.RegistrationPresentationType != sessionModel.SessionTypePoster {
		return nil, errs.Validation("registration_board_id", "board id applies to poster presentations only")
	}

	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		m.RegistrationBoardID = nil
	} else {
		if m.RegistrationSessionID != nil {
			taken, err := s.repo.BoardTaken(ctx, *m.RegistrationSessionID, boardID, m.RegistrationID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, errs.Validation("registration_board_id", "board is already taken in this session")
			}
		}
		m.RegistrationBoardID = &boardID
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
