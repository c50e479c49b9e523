package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"symposium_backend/internals/errs"
	"symposium_backend/internals/features/symposium/sessions/model"
)

type fakeSessionRepo struct {
	sessions  map[uuid.UUID]model.PresentationSessionModel
	regCounts map[uuid.UUID]int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:  make(map[uuid.UUID]model.PresentationSessionModel),
		regCounts: make(map[uuid.UUID]int64),
	}
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PresentationSessionModel, error) {
	m, ok := r.sessions[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	out := m
	return &out, nil
}

func (r *fakeSessionRepo) Search(_ context.Context, f Filter) ([]model.PresentationSessionModel, error) {
	var out []model.PresentationSessionModel
	for _, m := range r.sessions {
		if f.Type != "" && m.PresentationSessionType != f.Type {
			continue
		}
		if f.Status != "" && m.PresentationSessionStatus != f.Status {
			continue
		}
		if f.AvailableOnly && !m.HasAvailableSlots() {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeSessionRepo) Create(_ context.Context, m *model.PresentationSessionModel) error {
	if m.PresentationSessionID == uuid.Nil {
		m.PresentationSessionID = uuid.New()
	}
	r.sessions[m.PresentationSessionID] = *m
	return nil
}

func (r *fakeSessionRepo) Save(_ context.Context, m *model.PresentationSessionModel) error {
	r.sessions[m.PresentationSessionID] = *m
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) CountRegistrationsBySession(_ context.Context, id uuid.UUID) (int64, error) {
	return r.regCounts[id], nil
}

func validSession() *model.PresentationSessionModel {
	return &model.PresentationSessionModel{
		PresentationSessionDate:      "2026-10-12",
		PresentationSessionStartTime: "09:00",
		PresentationSessionEndTime:   "11:00",
		PresentationSessionVenue:     "Auditorium A",
		PresentationSessionType:      model.SessionTypeOral,
		PresentationSessionCapacity:  2,
	}
}

func seedSession(t *testing.T, repo *fakeSessionRepo, mutate func(*model.PresentationSessionModel)) uuid.UUID {
	t.Helper()
	m := validSession()
	m.PresentationSessionID = uuid.New()
	m.PresentationSessionStatus = model.SessionStatusOpen
	if mutate != nil {
		mutate(m)
	}
	repo.sessions[m.PresentationSessionID] = *m
	return m.PresentationSessionID
}

func TestCreateValidationOrder(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo())

	tests := []struct {
		name      string
		mutate    func(*model.PresentationSessionModel)
		wantField string
	}{
		{"missing date", func(m *model.PresentationSessionModel) { m.PresentationSessionDate = " " }, "presentation_session_date"},
		{"missing start", func(m *model.PresentationSessionModel) { m.PresentationSessionStartTime = "" }, "presentation_session_start_time"},
		{"missing end", func(m *model.PresentationSessionModel) { m.PresentationSessionEndTime = "" }, "presentation_session_end_time"},
		{"missing venue", func(m *model.PresentationSessionModel) { m.PresentationSessionVenue = "" }, "presentation_session_venue"},
		{"bad type", func(m *model.PresentationSessionModel) { m.PresentationSessionType = "WORKSHOP" }, "presentation_session_type"},
		{"zero capacity", func(m *model.PresentationSessionModel) { m.PresentationSessionCapacity = 0 }, "presentation_session_capacity"},
		{"negative capacity", func(m *model.PresentationSessionModel) { m.PresentationSessionCapacity = -3 }, "presentation_session_capacity"},
		{"start after end", func(m *model.PresentationSessionModel) {
			m.PresentationSessionStartTime = "11:00"
			m.PresentationSessionEndTime = "09:00"
		}, "presentation_session_start_time"},
		{"start equals end", func(m *model.PresentationSessionModel) {
			m.PresentationSessionStartTime = "09:00"
			m.PresentationSessionEndTime = "09:00"
		}, "presentation_session_start_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validSession()
			tt.mutate(m)
			err := svc.Create(context.Background(), m)
			if !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			var e *errs.Error
			errors.As(err, &e)
			if e.Field != tt.wantField {
				t.Fatalf("want field %q, got %q", tt.wantField, e.Field)
			}
		})
	}
}

func TestCreateDefaultsToOpen(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)

	m := validSession()
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.PresentationSessionStatus != model.SessionStatusOpen {
		t.Fatalf("want OPEN, got %q", m.PresentationSessionStatus)
	}
}

func TestTryReserveSlotFillsThenFails(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, nil) // capacity 2

	if _, err := svc.TryReserveSlot(context.Background(), id); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	m, err := svc.TryReserveSlot(context.Background(), id)
	if err != nil {
		t.Fatalf("second reserve: %v", err)
	}
	if m.PresentationSessionRegistered != 2 {
		t.Fatalf("want registered 2, got %d", m.PresentationSessionRegistered)
	}
	if m.PresentationSessionStatus != model.SessionStatusFull {
		t.Fatalf("want FULL at capacity, got %q", m.PresentationSessionStatus)
	}

	if _, err := svc.TryReserveSlot(context.Background(), id); !errors.Is(err, errs.ErrCapacity) {
		t.Fatalf("want capacity error, got %v", err)
	}
	// The failed attempt must not move the count.
	stored, _ := svc.Get(context.Background(), id)
	if stored.PresentationSessionRegistered != 2 {
		t.Fatalf("failed reserve changed count to %d", stored.PresentationSessionRegistered)
	}
}

func TestTryReserveSlotRespectsClosedStatus(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionStatus = model.SessionStatusClosed
	})

	if _, err := svc.TryReserveSlot(context.Background(), id); !errors.Is(err, errs.ErrCapacity) {
		t.Fatalf("want capacity error on closed session, got %v", err)
	}
}

func TestReleaseSlotReopensFullOnly(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)

	full := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionRegistered = 2
		m.PresentationSessionStatus = model.SessionStatusFull
	})
	m, err := svc.ReleaseSlot(context.Background(), full)
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if m.PresentationSessionRegistered != 1 || m.PresentationSessionStatus != model.SessionStatusOpen {
		t.Fatalf("want 1/OPEN, got %d/%q", m.PresentationSessionRegistered, m.PresentationSessionStatus)
	}

	closed := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionRegistered = 1
		m.PresentationSessionStatus = model.SessionStatusClosed
	})
	m, err = svc.ReleaseSlot(context.Background(), closed)
	if err != nil {
		t.Fatalf("release closed: %v", err)
	}
	if m.PresentationSessionStatus != model.SessionStatusClosed {
		t.Fatalf("release resurrected a CLOSED session to %q", m.PresentationSessionStatus)
	}

	// Floor at zero.
	empty := seedSession(t, repo, nil)
	m, err = svc.ReleaseSlot(context.Background(), empty)
	if err != nil {
		t.Fatalf("release empty: %v", err)
	}
	if m.PresentationSessionRegistered != 0 {
		t.Fatalf("want registered 0, got %d", m.PresentationSessionRegistered)
	}
}

func TestUpdateKeepsServiceOwnedFields(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionCapacity = 5
		m.PresentationSessionRegistered = 3
	})

	upd := validSession()
	upd.PresentationSessionID = id
	upd.PresentationSessionCapacity = 6
	upd.PresentationSessionRegistered = 99 // client-supplied, must be ignored
	upd.PresentationSessionStatus = model.SessionStatusClosed

	if err := svc.Update(context.Background(), upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ := svc.Get(context.Background(), id)
	if stored.PresentationSessionRegistered != 3 {
		t.Fatalf("update changed registered to %d", stored.PresentationSessionRegistered)
	}
	if stored.PresentationSessionStatus != model.SessionStatusOpen {
		t.Fatalf("update changed status to %q", stored.PresentationSessionStatus)
	}
}

func TestUpdateRejectsCapacityBelowRegistered(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionCapacity = 5
		m.PresentationSessionRegistered = 3
	})

	upd := validSession()
	upd.PresentationSessionID = id
	upd.PresentationSessionCapacity = 2

	err := svc.Update(context.Background(), upd)
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestUpdateCapacityShrinkToRegisteredGoesFull(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionCapacity = 5
		m.PresentationSessionRegistered = 3
	})

	upd := validSession()
	upd.PresentationSessionID = id
	upd.PresentationSessionCapacity = 3

	if err := svc.Update(context.Background(), upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ := svc.Get(context.Background(), id)
	if stored.PresentationSessionStatus != model.SessionStatusFull {
		t.Fatalf("want FULL after shrinking to registered count, got %q", stored.PresentationSessionStatus)
	}
}

func TestChangeStatus(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, nil)

	if _, err := svc.ChangeStatus(context.Background(), id, model.SessionStatusFull); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("FULL must not be settable by hand, got %v", err)
	}
	if _, err := svc.ChangeStatus(context.Background(), id, "PAUSED"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error for unknown status, got %v", err)
	}

	m, err := svc.ChangeStatus(context.Background(), id, model.SessionStatusClosed)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if m.PresentationSessionStatus != model.SessionStatusClosed {
		t.Fatalf("want CLOSED, got %q", m.PresentationSessionStatus)
	}

	// Reopening a session already at capacity snaps straight to FULL.
	atCap := seedSession(t, repo, func(m *model.PresentationSessionModel) {
		m.PresentationSessionRegistered = 2
		m.PresentationSessionStatus = model.SessionStatusClosed
	})
	m, err = svc.ChangeStatus(context.Background(), atCap, model.SessionStatusOpen)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if m.PresentationSessionStatus != model.SessionStatusFull {
		t.Fatalf("want FULL on reopen at capacity, got %q", m.PresentationSessionStatus)
	}
}

func TestDeleteNeedsConfirmationWithRegistrations(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, nil)
	repo.regCounts[id] = 2

	deleted, err := svc.Delete(context.Background(), id, false)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatal("delete went through without confirmation")
	}
	if _, err := svc.Get(context.Background(), id); err != nil {
		t.Fatalf("session vanished without confirmation: %v", err)
	}

	deleted, err = svc.Delete(context.Background(), id, true)
	if err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if !deleted {
		t.Fatal("confirmed delete refused")
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found after delete, got %v", err)
	}
}

func TestDeleteEmptySessionNeedsNoConfirmation(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo)
	id := seedSession(t, repo, nil)

	deleted, err := svc.Delete(context.Background(), id, false)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("empty session should delete without confirmation")
	}
}
