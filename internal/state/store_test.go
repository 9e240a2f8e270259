package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStatus_TextAndClass(t *testing.T) {
	tests := []struct {
		status     Status
		text, want string
	}{
		{StatusConnecting, "Connecting", "disconnected"},
		{StatusConnected, "Connected", "connected"},
		{StatusDisconnected, "Disconnected", "disconnected"},
		{StatusError, "Error", "error"},
	}
	for _, tt := range tests {
		if tt.status.String() != tt.text || tt.status.Class() != tt.want {
			t.Fatalf("%d: got %q/%q, want %q/%q", tt.status, tt.status.String(), tt.status.Class(), tt.text, tt.want)
		}
	}
}

func TestStore_StatusTransitions(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.Status != StatusConnecting {
		t.Fatalf("zero Store status = %v, want Connecting", snap.Status)
	}

	before := time.Now()
	origErr := errors.New("boom")
	s.SetStatus(StatusError, origErr)
	s.SetStatus(StatusDisconnected, nil)

	snap := s.Snapshot()
	if snap.Status != StatusDisconnected {
		t.Fatalf("status = %v, want Disconnected", snap.Status)
	}
	if snap.LastChange.Before(before) {
		t.Fatalf("LastChange = %v, want >= %v", snap.LastChange, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom kept across Disconnected", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}

	s.SetConnection("abc")
	snap = s.Snapshot()
	if snap.Status != StatusConnected || snap.ConnectionID != "abc" || snap.LastError != nil {
		t.Fatalf("after connect: %#v", snap)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}
	s.SetFailures(1)
	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}
	s.SetFailures(2)
	if !s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}
	s.GiveUp(errors.New("too many"))
	snap := s.Snapshot()
	if !snap.GaveUp || snap.Status != StatusDisconnected {
		t.Fatalf("GiveUp snapshot = %#v", snap)
	}

	s.SetConnection("id")
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() || snap.GaveUp {
		t.Fatalf("success should reset failures: %#v", snap)
	}
}

func TestStore_ProgressAndReloads(t *testing.T) {
	var s Store

	s.ProgressFailed()
	snap := s.Snapshot()
	if snap.HasProgress || snap.ProgressFailures != 1 {
		t.Fatalf("progress before first frame: %#v", snap)
	}

	s.SetProgress(Progress{Counter: 3, Pending: 1, Graded: 2})
	s.CountReload()
	s.CountReload()
	snap = s.Snapshot()
	if !snap.HasProgress || snap.Progress.Graded != 2 || snap.ProgressFailures != 0 {
		t.Fatalf("progress = %#v", snap)
	}
	if snap.Reloads != 2 {
		t.Fatalf("Reloads = %d, want 2", snap.Reloads)
	}
}
