package model

import "testing"

func TestRateModel_TextBeforeAndAfterFirstWindow(t *testing.T) {
	m := NewRateModel()
	if got := m.Text(); got != "Loading..." {
		t.Fatalf("expected loading text, got %q", got)
	}
	if !m.Set(29) {
		t.Fatalf("first value should report a change")
	}
	if got := m.Text(); got != "FPS: 29" {
		t.Fatalf("unexpected text %q", got)
	}
	if m.Set(29) {
		t.Fatalf("same value should not report a change")
	}
	m.Clear()
	if _, known := m.Value(); known {
		t.Fatalf("clear should forget the rate")
	}
}

func TestStatusModel_RevisionTracksUpdates(t *testing.T) {
	var m StatusModel
	msg, rev0 := m.Message()
	if msg != "" {
		t.Fatalf("zero value should hold no error, got %q", msg)
	}
	m.SetError("Permission Denied.")
	msg, rev1 := m.Message()
	if msg != "Permission Denied." || rev1 == rev0 {
		t.Fatalf("unexpected message %q rev %d->%d", msg, rev0, rev1)
	}
	m.Clear()
	msg, rev2 := m.Message()
	if msg != "" || rev2 == rev1 {
		t.Fatalf("clear failed: %q rev %d->%d", msg, rev1, rev2)
	}
	m.Clear()
	if _, rev3 := m.Message(); rev3 != rev2 {
		t.Fatalf("clearing an empty status should not bump the revision")
	}
}

func TestPreviewModel_ZeroValue(t *testing.T) {
	var m PreviewModel
	if m.Enabled() {
		t.Fatalf("zero value should be disabled")
	}
	m.SetEnabled(true)
	if !m.Enabled() {
		t.Fatalf("expected enabled")
	}
	var nilModel *PreviewModel
	nilModel.SetEnabled(true)
	if nilModel.Enabled() {
		t.Fatalf("nil model reports disabled")
	}
}
