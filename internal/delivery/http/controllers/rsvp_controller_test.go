package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

type mockSearchService struct {
	matches []*domain.GuestMatch
	match   *domain.GuestMatch
	err     error
}

func (m *mockSearchService) Search(ctx context.Context, query string) ([]*domain.GuestMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.matches, nil
}

func (m *mockSearchService) GuestGroup(ctx context.Context, guestID string) (*domain.GuestMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.match, nil
}

type mockRSVPService struct {
	guest   *domain.Guest
	updated int
	err     error

	lastAttending bool
	lastPlusOnes  int
	lastOverride  bool
}

func (m *mockRSVPService) Confirm(ctx context.Context, guestID string, attending bool, plusOnes int) (*domain.Guest, error) {
	m.lastAttending = attending
	m.lastPlusOnes = plusOnes
	if m.err != nil {
		return nil, m.err
	}
	return m.guest, nil
}

func (m *mockRSVPService) ConfirmGroup(ctx context.Context, groupID string, attending, override bool) (int, error) {
	m.lastAttending = attending
	m.lastOverride = override
	if m.err != nil {
		return 0, m.err
	}
	return m.updated, nil
}

func testController(search domain.SearchService, rsvp domain.RSVPService) *RSVPController {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRSVPController(logger, search, rsvp)
}

func TestRSVPController_SearchGuests_Success(t *testing.T) {
	svc := &mockSearchService{
		matches: []*domain.GuestMatch{
			{Guest: &domain.Guest{ID: "g1", Name: "Maria Silva"}},
		},
	}
	ctrl := testController(svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/api/guests/search?q=silva", nil)
	w := httptest.NewRecorder()

	ctrl.SearchGuests(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestRSVPController_SearchGuests_Error(t *testing.T) {
	svc := &mockSearchService{err: errors.New("db down")}
	ctrl := testController(svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/api/guests/search?q=silva", nil)
	w := httptest.NewRecorder()

	ctrl.SearchGuests(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestRSVPController_GetGuestGroup_NotFound(t *testing.T) {
	svc := &mockSearchService{err: domain.ErrNotFound}
	ctrl := testController(svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/api/guests/g1/group", nil)
	req.SetPathValue("guestID", "g1")
	w := httptest.NewRecorder()

	ctrl.GetGuestGroup(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestRSVPController_ConfirmGuest_Success(t *testing.T) {
	rsvp := &mockRSVPService{
		guest: &domain.Guest{ID: "g1", Name: "Maria Silva", RSVPStatus: domain.RSVPConfirmed, PlusOnes: 2},
	}
	ctrl := testController(&mockSearchService{}, rsvp)

	body := strings.NewReader(`{"attending": true, "plus_ones": 2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/guests/g1", body)
	req.SetPathValue("guestID", "g1")
	w := httptest.NewRecorder()

	ctrl.ConfirmGuest(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if !rsvp.lastAttending || rsvp.lastPlusOnes != 2 {
		t.Fatalf("expected attending with 2 plus-ones, got attending=%v plus_ones=%d", rsvp.lastAttending, rsvp.lastPlusOnes)
	}
}

func TestRSVPController_ConfirmGuest_NegativePlusOnes(t *testing.T) {
	ctrl := testController(&mockSearchService{}, &mockRSVPService{})

	body := strings.NewReader(`{"attending": true, "plus_ones": -1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/guests/g1", body)
	req.SetPathValue("guestID", "g1")
	w := httptest.NewRecorder()

	ctrl.ConfirmGuest(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRSVPController_ConfirmGuest_TooManyPlusOnes(t *testing.T) {
	rsvp := &mockRSVPService{err: domain.ErrInvalidInput}
	ctrl := testController(&mockSearchService{}, rsvp)

	body := strings.NewReader(`{"attending": true, "plus_ones": 11}`)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/guests/g1", body)
	req.SetPathValue("guestID", "g1")
	w := httptest.NewRecorder()

	ctrl.ConfirmGuest(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRSVPController_ConfirmGuest_NotFound(t *testing.T) {
	rsvp := &mockRSVPService{err: domain.ErrNotFound}
	ctrl := testController(&mockSearchService{}, rsvp)

	body := strings.NewReader(`{"attending": false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/guests/ghost", body)
	req.SetPathValue("guestID", "ghost")
	w := httptest.NewRecorder()

	ctrl.ConfirmGuest(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestRSVPController_ConfirmGroup_Success(t *testing.T) {
	rsvp := &mockRSVPService{updated: 3}
	ctrl := testController(&mockSearchService{}, rsvp)

	body := strings.NewReader(`{"attending": true, "override": true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/groups/grp1", body)
	req.SetPathValue("groupID", "grp1")
	w := httptest.NewRecorder()

	ctrl.ConfirmGroup(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if !rsvp.lastOverride {
		t.Fatal("expected override passed through")
	}

	var resp struct {
		Data ConfirmGroupResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Updated != 3 {
		t.Fatalf("expected 3 updated, got %d", resp.Data.Updated)
	}
}

func TestRSVPController_ConfirmGroup_UnknownGroup(t *testing.T) {
	rsvp := &mockRSVPService{err: domain.ErrNotFound}
	ctrl := testController(&mockSearchService{}, rsvp)

	body := strings.NewReader(`{"attending": true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp/groups/ghost", body)
	req.SetPathValue("groupID", "ghost")
	w := httptest.NewRecorder()

	ctrl.ConfirmGroup(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
