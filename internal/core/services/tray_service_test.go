package services

import (
	"context"
	"testing"

	"gu-notepro/internal/core/domain"
)

func snap(id, name string) domain.StaffSnapshot {
	return domain.StaffSnapshot{ID: id, Name: name}
}

// trayFixture covers every classification shape: held, sent onward,
// terminal, untouched, and received-then-never-acted.
func trayFixture() []*domain.NoteSheet {
	return []*domain.NoteSheet{
		{
			// Held by REG, active: REG in-tray.
			ID: "n1", Subject: "SANCTION OF LEAVE", ReferenceNo: "GU/FIN/2026/1000",
			Status:  domain.StatusPending,
			Creator: snap("FO", "Finance Officer"), CurrentHandler: snap("REG", "Registrar"),
			History: []domain.WorkflowEntry{
				{From: snap("FO", "Finance Officer"), To: snap("REG", "Registrar"), Action: domain.ActionInitiate},
			},
		},
		{
			// REG forwarded it away, still active: REG out-tray.
			ID: "n2", Subject: "BUDGET PROPOSAL", ReferenceNo: "GU/REG/2026/1000",
			Status:  domain.StatusPending,
			Creator: snap("REG", "Registrar"), CurrentHandler: snap("VC", "Vice-Chancellor"),
			History: []domain.WorkflowEntry{
				{From: snap("REG", "Registrar"), To: snap("VC", "Vice-Chancellor"), Action: domain.ActionInitiate},
			},
		},
		{
			// Approved file REG once touched: all-hits only.
			ID: "n3", Subject: "CONVOCATION DATES", ReferenceNo: "GU/ADM/2026/1000",
			Status:  domain.StatusApproved,
			Creator: snap("REG", "Registrar"), CurrentHandler: snap("REG", "Registrar"),
			History: []domain.WorkflowEntry{
				{From: snap("REG", "Registrar"), To: snap("VC", "Vice-Chancellor"), Action: domain.ActionInitiate},
				{From: snap("VC", "Vice-Chancellor"), To: snap("REG", "Registrar"), Action: domain.ActionApprove},
			},
		},
		{
			// No REG involvement at all.
			ID: "n4", Subject: "SPORTS GRANT", ReferenceNo: "GU/SPO/2026/1000",
			Status:  domain.StatusPending,
			Creator: snap("FO", "Finance Officer"), CurrentHandler: snap("VC", "Vice-Chancellor"),
			History: []domain.WorkflowEntry{
				{From: snap("FO", "Finance Officer"), To: snap("VC", "Vice-Chancellor"), Action: domain.ActionInitiate},
			},
		},
	}
}

func ids(notes []*domain.NoteSheet) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClassifyTrays(t *testing.T) {
	notes := trayFixture()

	if got := ids(Classify(notes, "REG", TrayIn, "")); !equalIDs(got, "n1") {
		t.Errorf("in-tray = %v, want [n1]", got)
	}
	if got := ids(Classify(notes, "REG", TrayOut, "")); !equalIDs(got, "n2") {
		t.Errorf("out-tray = %v, want [n2]", got)
	}
	if got := ids(Classify(notes, "REG", TrayAllHits, "")); !equalIDs(got, "n1", "n2", "n3") {
		t.Errorf("all-hits = %v, want [n1 n2 n3]", got)
	}
}

func TestTraysAreDisjoint(t *testing.T) {
	notes := trayFixture()
	for _, userID := range []string{"REG", "FO", "VC"} {
		in := map[string]bool{}
		for _, n := range Classify(notes, userID, TrayIn, "") {
			in[n.ID] = true
		}
		for _, n := range Classify(notes, userID, TrayOut, "") {
			if in[n.ID] {
				t.Errorf("user %s: note %s in both trays", userID, n.ID)
			}
		}
	}
}

func TestTerminalNoteOnlyInAllHits(t *testing.T) {
	notes := trayFixture()
	// n3 is approved and sitting with REG; custody of a closed file does
	// not put it back on the desk.
	for _, n := range Classify(notes, "REG", TrayIn, "") {
		if n.ID == "n3" {
			t.Error("terminal note appeared in in-tray")
		}
	}
	for _, n := range Classify(notes, "REG", TrayOut, "") {
		if n.ID == "n3" {
			t.Error("terminal note appeared in out-tray")
		}
	}
}

func TestReceivedOnlyNoteFallsInNeitherTray(t *testing.T) {
	// A restored backup can hold a note where a user appears only as a
	// past recipient: relevant, yet on nobody's desk from their side.
	note := &domain.NoteSheet{
		ID: "n5", Subject: "ARCHIVED CIRCULAR", Status: domain.StatusPending,
		Creator: snap("FO", "Finance Officer"), CurrentHandler: snap("VC", "Vice-Chancellor"),
		History: []domain.WorkflowEntry{
			{From: snap("FO", "Finance Officer"), To: snap("REG", "Registrar"), Action: domain.ActionInitiate},
			{From: snap("FO", "Finance Officer"), To: snap("VC", "Vice-Chancellor"), Action: domain.ActionForward},
		},
	}
	notes := []*domain.NoteSheet{note}

	if got := Classify(notes, "REG", TrayIn, ""); len(got) != 0 {
		t.Errorf("received-only note in in-tray: %v", ids(got))
	}
	if got := Classify(notes, "REG", TrayOut, ""); len(got) != 0 {
		t.Errorf("received-only note in out-tray: %v", ids(got))
	}
	if got := Classify(notes, "REG", TrayAllHits, ""); !equalIDs(ids(got), "n5") {
		t.Errorf("received-only note missing from all-hits: %v", ids(got))
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	notes := trayFixture()
	first := ids(Classify(notes, "REG", TrayAllHits, ""))
	second := ids(Classify(notes, "REG", TrayAllHits, ""))
	if !equalIDs(first, second...) {
		t.Errorf("classification not stable: %v vs %v", first, second)
	}
}

func TestSearchOverlay(t *testing.T) {
	notes := trayFixture()

	if got := ids(Classify(notes, "REG", TrayAllHits, "leave")); !equalIDs(got, "n1") {
		t.Errorf("search 'leave' = %v, want [n1]", got)
	}
	if got := ids(Classify(notes, "REG", TrayAllHits, "GU/REG")); !equalIDs(got, "n2") {
		t.Errorf("search by refno = %v, want [n2]", got)
	}
	if got := ids(Classify(notes, "REG", TrayAllHits, "vice-chancellor")); !equalIDs(got, "n2") {
		t.Errorf("search by handler name = %v, want [n2]", got)
	}
	if got := Classify(notes, "REG", TrayAllHits, "no such thing"); len(got) != 0 {
		t.Errorf("search miss returned %d notes", len(got))
	}
}

func TestCountsMatchLists(t *testing.T) {
	notes := trayFixture()
	for _, userID := range []string{"REG", "FO", "VC", "GHOST"} {
		stats := CountTrays(notes, userID)
		if got := len(Classify(notes, userID, TrayIn, "")); got != stats.InTray {
			t.Errorf("user %s: inTray count %d, list %d", userID, stats.InTray, got)
		}
		if got := len(Classify(notes, userID, TrayOut, "")); got != stats.OutTray {
			t.Errorf("user %s: outTray count %d, list %d", userID, stats.OutTray, got)
		}
		if got := len(Classify(notes, userID, TrayAllHits, "")); got != stats.AllHits {
			t.Errorf("user %s: allHits count %d, list %d", userID, stats.AllHits, got)
		}
	}
}

func TestTrayServiceList(t *testing.T) {
	noteRepo := newMemNoteRepo()
	for _, n := range trayFixture() {
		if err := noteRepo.Put(context.Background(), n); err != nil {
			t.Fatal(err)
		}
	}
	svc := NewTrayService(noteRepo)

	notes, err := svc.List(context.Background(), "REG", TrayIn, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !equalIDs(ids(notes), "n1") {
		t.Errorf("list = %v, want [n1]", ids(notes))
	}

	stats, err := svc.Stats(context.Background(), "REG")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.InTray != 1 || stats.OutTray != 1 || stats.AllHits != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRegistryOverview(t *testing.T) {
	noteRepo := newMemNoteRepo()
	for _, n := range trayFixture() {
		if err := noteRepo.Put(context.Background(), n); err != nil {
			t.Fatal(err)
		}
	}
	if err := noteRepo.Put(context.Background(), &domain.NoteSheet{ID: "n6", Status: domain.StatusRejected}); err != nil {
		t.Fatal(err)
	}
	svc := NewTrayService(noteRepo)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	want := RegistryOverview{Pending: 3, Approved: 1, Rejected: 1, Total: 5}
	if *overview != want {
		t.Errorf("overview = %+v, want %+v", overview, want)
	}
}
