package tutor

import (
	"strings"
	"testing"
	"time"
)

var promptNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func masteryAt(level MasteryLevel, failures int, lastTested time.Time) *MasteryEntry {
	return &MasteryEntry{Level: level, FailureCount: failures, LastTested: lastTested}
}

func TestCompile_Deterministic(t *testing.T) {
	s := DefaultState("u1", "UPSC")
	s.ConceptMastery = map[string]*MasteryEntry{
		"polity":    masteryAt(LevelFragile, 2, promptNow),
		"economy":   masteryAt(LevelDeveloping, 2, promptNow),
		"geography": masteryAt(LevelSolid, 0, promptNow.Add(-5*24*time.Hour)),
		"history":   masteryAt(LevelSolid, 0, promptNow.Add(-4*24*time.Hour)),
	}
	s.Misconceptions = []Misconception{
		{Concept: "polity", Misconception: "confuses money bill with finance bill", SessionNumber: 1},
	}
	days := 90
	ctx := &StudentContext{StudentName: "Asha", ExamName: "UPSC CSE", DaysToExam: &days, CurrentStreak: 7}

	a := Compile(s, ctx, ActionWarmupRetrieval, promptNow)
	b := Compile(s, ctx, ActionWarmupRetrieval, promptNow)
	if a != b {
		t.Error("Compile is not deterministic for identical inputs")
	}
}

func TestDeriveSignals_FragileOrdering(t *testing.T) {
	s := DefaultState("u1", "UPSC")
	s.ConceptMastery = map[string]*MasteryEntry{
		"a-few-failures":  masteryAt(LevelFragile, 1, promptNow),
		"most-failures":   masteryAt(LevelDeveloping, 5, promptNow),
		"tied-alpha":      masteryAt(LevelFragile, 3, promptNow),
		"tied-beta":       masteryAt(LevelDeveloping, 3, promptNow),
		"solid-untracked": masteryAt(LevelSolid, 9, promptNow),
	}

	sig := deriveSignals(s, promptNow)

	want := []string{"most-failures", "tied-alpha", "tied-beta", "a-few-failures"}
	if len(sig.Fragile) != len(want) {
		t.Fatalf("fragile = %v, want %v", sig.Fragile, want)
	}
	for i := range want {
		if sig.Fragile[i] != want[i] {
			t.Errorf("fragile[%d] = %q, want %q", i, sig.Fragile[i], want[i])
		}
	}
}

func TestDeriveSignals_OverdueSolidConcepts(t *testing.T) {
	s := DefaultState("u1", "UPSC")
	s.ConceptMastery = map[string]*MasteryEntry{
		"stale":     masteryAt(LevelSolid, 0, promptNow.Add(-4*24*time.Hour)),
		"fresh":     masteryAt(LevelSolid, 0, promptNow.Add(-2*24*time.Hour)),
		"mastered":  masteryAt(LevelMastered, 0, promptNow.Add(-30*24*time.Hour)),
		"und-level": masteryAt(LevelDeveloping, 0, promptNow.Add(-30*24*time.Hour)),
	}

	sig := deriveSignals(s, promptNow)

	if len(sig.Overdue) != 1 || sig.Overdue[0] != "stale" {
		t.Errorf("overdue = %v, want [stale]", sig.Overdue)
	}
}

func TestDeriveSignals_BoundedLists(t *testing.T) {
	s := DefaultState("u1", "UPSC")
	for i := 0; i < 5; i++ {
		s.Misconceptions = append(s.Misconceptions, Misconception{
			Concept:       "c",
			Misconception: strings.Repeat("m", i+1),
		})
	}
	s.LastConceptsTested = []string{"one", "two", "three", "four", "five", "six"}

	sig := deriveSignals(s, promptNow)

	// Last 3 misconceptions, last 4 topics.
	if strings.Contains(sig.Misconceptions, `"mm"`) {
		t.Errorf("misconceptions kept more than the last 3: %s", sig.Misconceptions)
	}
	if !strings.Contains(sig.Misconceptions, `"mmmmm"`) {
		t.Errorf("misconceptions missing the newest entry: %s", sig.Misconceptions)
	}
	if sig.RecentTopics != "three, four, five, six" {
		t.Errorf("recent topics = %q", sig.RecentTopics)
	}
}

func TestDeriveSignals_EmptyState(t *testing.T) {
	sig := deriveSignals(DefaultState("u1", "UPSC"), promptNow)
	if sig.Misconceptions != "none" {
		t.Errorf("misconceptions = %q, want none", sig.Misconceptions)
	}
	if sig.RecentTopics != "none" {
		t.Errorf("recent topics = %q, want none", sig.RecentTopics)
	}
}

func TestCompile_PerformanceBlockOmittedWithoutContext(t *testing.T) {
	s := DefaultState("u1", "GATE")
	prompt := Compile(s, nil, ActionRespondGeneral, promptNow)
	// The phrase also appears inside rule text, so match the block
	// header itself.
	if strings.Contains(prompt, "STUDENT PERFORMANCE DATA (ground every") {
		t.Error("performance block rendered without context")
	}
	if !strings.Contains(prompt, "STUDENT KNOWLEDGE STATE") {
		t.Error("knowledge state block missing")
	}
	if !strings.Contains(prompt, "NON-NEGOTIABLE RULES") {
		t.Error("rules block missing")
	}
}

func TestCompile_PerformanceBlockContent(t *testing.T) {
	days := 45
	acc := 72.4
	ctx := &StudentContext{
		StudentName:       "Ravi",
		ExamName:          "GATE CS",
		DaysToExam:        &days,
		CurrentStreak:     1,
		QuizAccuracy7Days: &acc,
		TodayTopicsDone:   2,
		TodayTopicsTotal:  5,
		RecentWeakTopics:  []string{"graph theory", "TCP"},
	}

	prompt := Compile(DefaultState("u1", "GATE"), ctx, ActionRespondGeneral, promptNow)

	for _, want := range []string{
		"Ravi", "GATE CS", "45 days", "1 day\n", "72%", "2/5 topics done", "graph theory, TCP",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCompile_ActionInstructions(t *testing.T) {
	s := DefaultState("u1", "NEET")
	s.HintsGiven = 1
	s.ConsecutiveFailures = 3
	s.ConsecutiveSuccesses = 4

	tests := []struct {
		action TutorAction
		want   string
	}{
		{ActionWarmupRetrieval, "WARM-UP RETRIEVAL"},
		{ActionGiveHint, "GIVE TARGETED HINT 1/2"},
		{ActionScaffoldBack, "failed 3 times consecutively"},
		{ActionEscalateDifficulty, "4 questions correctly in a row"},
		{ActionChallengeClaimedKnow, "CHALLENGE CLAIMED KNOWLEDGE"},
		{ActionAnswerThenTest, "ANSWER THEN TEST"},
		{ActionPreviewNext, "SESSION WRAP-UP + PREVIEW"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			prompt := Compile(s, nil, tt.action, promptNow)
			if !strings.Contains(prompt, tt.want) {
				t.Errorf("prompt for %v missing %q", tt.action, tt.want)
			}
		})
	}
}

func TestCompile_OverconfidentRatingBranch(t *testing.T) {
	s := DefaultState("u1", "NEET")
	s.ConfidenceCalibration = CalibrationOverconfident

	prompt := Compile(s, nil, ActionProcessConfidenceRating, promptNow)
	if !strings.Contains(prompt, "HIGH CONFIDENCE + WRONG ANSWER") {
		t.Error("overconfident branch missing from rating instruction")
	}
}
