package observability

import "testing"

func TestStageWindowSnapshot(t *testing.T) {
	w := NewStageWindow(8)
	w.Observe(StageAnswer, 500)
	w.Observe(StageAnswer, 700)
	w.Observe(StageAnswer, 900)
	w.ObserveIndicator("quota_block")
	w.ObserveIndicator("quota_block")

	snap := w.Snapshot()
	if snap.WindowSize != 8 {
		t.Fatalf("WindowSize = %d, want 8", snap.WindowSize)
	}
	if len(snap.Stages) != 1 {
		t.Fatalf("len(Stages) = %d, want 1", len(snap.Stages))
	}
	s := snap.Stages[0]
	if s.Stage != StageAnswer {
		t.Fatalf("Stage = %q, want %q", s.Stage, StageAnswer)
	}
	if s.Samples != 3 {
		t.Fatalf("Samples = %d, want 3", s.Samples)
	}
	if s.LastMS != 900 {
		t.Fatalf("LastMS = %.2f, want 900", s.LastMS)
	}
	if s.P50MS != 700 {
		t.Fatalf("P50MS = %.2f, want 700", s.P50MS)
	}
	if s.P95MS <= 700 || s.P95MS > 900 {
		t.Fatalf("P95MS = %.2f, want (700,900]", s.P95MS)
	}
	if s.TargetP95MS != 4000 {
		t.Fatalf("TargetP95MS = %.2f, want 4000", s.TargetP95MS)
	}
	if len(snap.Indicators) != 1 {
		t.Fatalf("len(Indicators) = %d, want 1", len(snap.Indicators))
	}
	if snap.Indicators[0].Name != "quota_block" {
		t.Fatalf("Indicators[0].Name = %q, want %q", snap.Indicators[0].Name, "quota_block")
	}
	if snap.Indicators[0].Count != 2 {
		t.Fatalf("Indicators[0].Count = %d, want 2", snap.Indicators[0].Count)
	}
}

func TestStageWindowWrapAround(t *testing.T) {
	w := NewStageWindow(4)
	for i := 0; i < 6; i++ {
		w.Observe(StageTurnTotal, float64(100*(i+1)))
	}

	snap := w.Snapshot()
	if len(snap.Stages) != 1 {
		t.Fatalf("len(Stages) = %d, want 1", len(snap.Stages))
	}
	s := snap.Stages[0]
	if s.Samples != 4 {
		t.Fatalf("Samples = %d, want 4", s.Samples)
	}
	if s.LastMS != 600 {
		t.Fatalf("LastMS = %.2f, want 600", s.LastMS)
	}
}

func TestStageWindowReset(t *testing.T) {
	w := NewStageWindow(4)
	w.Observe(StageClassify, 1)
	w.ObserveIndicator("answer_failure")
	w.Reset()

	snap := w.Snapshot()
	if len(snap.Stages) != 0 {
		t.Fatalf("len(Stages) = %d after reset, want 0", len(snap.Stages))
	}
	if len(snap.Indicators) != 0 {
		t.Fatalf("len(Indicators) = %d after reset, want 0", len(snap.Indicators))
	}
}
