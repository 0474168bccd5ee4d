package tutor

import (
	"testing"
	"time"
)

var planNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func stateWithPending(question, concept string) *StudentState {
	s := DefaultState("u1", "NEET")
	s.MessagesInSession = 5
	s.SetPending(question, concept)
	s.Mastery(concept, planNow)
	return s
}

func TestPlan_Greeting(t *testing.T) {
	s := DefaultState("u1", "NEET")
	s.SessionCount = 2
	s.MessagesInSession = 17
	s.SessionPhase = PhaseMetacognitive

	action := Plan(s, MessageGreeting, nil, "hi", planNow)

	if action != ActionWarmupRetrieval {
		t.Errorf("action = %v, want %v", action, ActionWarmupRetrieval)
	}
	if s.SessionPhase != PhaseWarmup {
		t.Errorf("phase = %v, want %v", s.SessionPhase, PhaseWarmup)
	}
	if s.SessionCount != 3 {
		t.Errorf("session count = %d, want 3", s.SessionCount)
	}
	if s.MessagesInSession != 1 {
		t.Errorf("messages in session = %d, want 1", s.MessagesInSession)
	}
}

func TestPlan_CorrectAnswerAdvancesMasteryOneLevel(t *testing.T) {
	tests := []struct {
		name  string
		level MasteryLevel
		score int
		want  MasteryLevel
	}{
		{"deep answer from NEW", LevelNew, 3, LevelFragile},
		{"deep answer from FRAGILE", LevelFragile, 3, LevelDeveloping},
		{"deep answer from DEVELOPING", LevelDeveloping, 3, LevelSolid},
		{"deep answer from SOLID", LevelSolid, 3, LevelMastered},
		{"deep answer from MASTERED stays", LevelMastered, 3, LevelMastered},
		{"shallow answer from NEW", LevelNew, 2, LevelFragile},
		{"shallow answer from FRAGILE stays", LevelFragile, 2, LevelFragile},
		{"shallow answer from SOLID stays", LevelSolid, 2, LevelSolid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWithPending("What is Ohm's law?", "ohms-law")
			s.ConceptMastery["ohms-law"].Level = tt.level

			Plan(s, MessageAnswer, &AssessmentResult{Score: tt.score, IsCorrect: true}, "V=IR", planNow)

			if got := s.ConceptMastery["ohms-law"].Level; got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlan_CorrectAnswerClearsPending(t *testing.T) {
	// No prior mastery entry: the concept is seen for the first time at
	// assessment, so the fresh entry is seeded with the hints already
	// given and the accrual adds them again.
	s := DefaultState("u1", "NEET")
	s.MessagesInSession = 5
	s.SetPending("What is Ohm's law?", "ohms-law")
	s.HintsGiven = 1

	action := Plan(s, MessageAnswer, &AssessmentResult{Score: 3, IsCorrect: true}, "V=IR", planNow)

	if action != ActionInterleavedPractice {
		t.Errorf("action = %v, want %v", action, ActionInterleavedPractice)
	}
	if s.PendingQuestion != "" {
		t.Errorf("pending question = %q, want cleared", s.PendingQuestion)
	}
	if s.HintsGiven != 0 {
		t.Errorf("hints given = %d, want 0", s.HintsGiven)
	}
	e := s.ConceptMastery["ohms-law"]
	if e.SuccessCount != 1 {
		t.Errorf("success count = %d, want 1", e.SuccessCount)
	}
	if e.HintsUsed != 2 {
		t.Errorf("hints used = %d, want 2", e.HintsUsed)
	}
	if !e.LastTested.Equal(planNow) {
		t.Errorf("last tested = %v, want %v", e.LastTested, planNow)
	}
}

func TestPlan_IncorrectAnswerHintBudget(t *testing.T) {
	s := stateWithPending("Define entropy", "entropy")
	wrong := &AssessmentResult{Score: 0, IsCorrect: false}

	if action := Plan(s, MessageAnswer, wrong, "no idea", planNow); action != ActionGiveHint {
		t.Fatalf("first wrong answer action = %v, want %v", action, ActionGiveHint)
	}
	if s.HintsGiven != 1 {
		t.Fatalf("hints given = %d, want 1", s.HintsGiven)
	}
	if s.PendingQuestion == "" {
		t.Fatal("pending question cleared during hint phase")
	}

	if action := Plan(s, MessageAnswer, wrong, "still no", planNow); action != ActionGiveHint {
		t.Fatalf("second wrong answer action = %v, want %v", action, ActionGiveHint)
	}
	if s.HintsGiven != 2 {
		t.Fatalf("hints given = %d, want 2", s.HintsGiven)
	}
}

func TestPlan_RevealAfterHintsExhausted(t *testing.T) {
	// Hints can be exhausted without a failure streak when earlier
	// failures were interleaved with successes on other concepts.
	s := stateWithPending("Define entropy", "entropy")
	s.HintsGiven = 2
	s.ConsecutiveFailures = 1

	action := Plan(s, MessageAnswer, &AssessmentResult{Score: 0, IsCorrect: false}, "??", planNow)
	if action != ActionRevealAnswer {
		t.Fatalf("action = %v, want %v", action, ActionRevealAnswer)
	}
	if s.PendingQuestion != "" {
		t.Error("pending question not cleared after reveal")
	}
	if s.HintsGiven != 0 {
		t.Errorf("hints given = %d, want 0 after reveal", s.HintsGiven)
	}
}

func TestPlan_ThirdConsecutiveFailureScaffoldsNotReveals(t *testing.T) {
	s := stateWithPending("Define entropy", "entropy")
	wrong := &AssessmentResult{Score: 0, IsCorrect: false}

	Plan(s, MessageAnswer, wrong, "a", planNow)
	Plan(s, MessageAnswer, wrong, "b", planNow)
	action := Plan(s, MessageAnswer, wrong, "c", planNow)

	if action != ActionScaffoldBack {
		t.Errorf("action = %v, want %v", action, ActionScaffoldBack)
	}
}

func TestPlan_ScaffoldBackDominatesHints(t *testing.T) {
	s := stateWithPending("Define entropy", "entropy")
	s.ConsecutiveFailures = 2
	s.HintsGiven = 1

	// The third consecutive failure triggers scaffolding even though a
	// hint is still left in the budget.
	action := Plan(s, MessageAnswer, &AssessmentResult{Score: 0, IsCorrect: false}, "entropy is heat", planNow)

	if action != ActionScaffoldBack {
		t.Fatalf("action = %v, want %v", action, ActionScaffoldBack)
	}
	if s.ConsecutiveFailures != 3 {
		t.Errorf("consecutive failures = %d, want 3", s.ConsecutiveFailures)
	}
	if s.PendingQuestion != "" {
		t.Error("pending question not cleared on scaffold back")
	}
	if s.HintsGiven != 0 {
		t.Errorf("hints given = %d, want 0", s.HintsGiven)
	}
}

func TestPlan_FailureRegressesMasteryOneLevel(t *testing.T) {
	tests := []struct {
		name  string
		level MasteryLevel
		want  MasteryLevel
	}{
		{"SOLID regresses", LevelSolid, LevelDeveloping},
		{"DEVELOPING regresses", LevelDeveloping, LevelFragile},
		{"FRAGILE stays", LevelFragile, LevelFragile},
		{"NEW becomes FRAGILE", LevelNew, LevelFragile},
		{"MASTERED stays", LevelMastered, LevelMastered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWithPending("q", "buffers")
			s.ConceptMastery["buffers"].Level = tt.level

			Plan(s, MessageAnswer, &AssessmentResult{Score: 0, IsCorrect: false}, "wrong", planNow)

			if got := s.ConceptMastery["buffers"].Level; got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlan_NilAssessmentIsNotIncorrect(t *testing.T) {
	s := stateWithPending("q", "buffers")
	s.MessagesInSession = 4 // lands in the new-concept band after increment

	action := Plan(s, MessageAnswer, nil, "some answer", planNow)

	if action != ActionIntroduceNewConcept {
		t.Errorf("action = %v, want %v", action, ActionIntroduceNewConcept)
	}
	e := s.ConceptMastery["buffers"]
	if e != nil && e.FailureCount != 0 {
		t.Errorf("failure count = %d, want 0 when no assessment ran", e.FailureCount)
	}
	if s.ConsecutiveFailures != 0 {
		t.Errorf("consecutive failures = %d, want 0", s.ConsecutiveFailures)
	}
}

func TestPlan_EscalateAfterSuccessStreak(t *testing.T) {
	s := stateWithPending("q", "optics")
	s.ConsecutiveSuccesses = 3

	action := Plan(s, MessageAnswer, &AssessmentResult{Score: 3, IsCorrect: true}, "right", planNow)

	if action != ActionEscalateDifficulty {
		t.Errorf("action = %v, want %v", action, ActionEscalateDifficulty)
	}
	if !s.AwaitingConfidenceRating {
		t.Error("expected AwaitingConfidenceRating after escalation")
	}
	if s.ConsecutiveSuccesses != 4 {
		t.Errorf("consecutive successes = %d, want 4", s.ConsecutiveSuccesses)
	}
}

func TestPlan_ConfidenceCalibration(t *testing.T) {
	tests := []struct {
		name    string
		rating  string
		correct bool
		want    ConfidenceCalibration
	}{
		{"confident and wrong", "5", false, CalibrationOverconfident},
		{"threshold rating and wrong", "4", false, CalibrationOverconfident},
		{"hesitant and right", "2", true, CalibrationUnderconfident},
		{"confident and right", "4", true, CalibrationCalibrated},
		{"hesitant and wrong", "1", false, CalibrationCalibrated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState("u1", "NEET")
			s.MessagesInSession = 5
			s.AwaitingConfidenceRating = true

			action := Plan(s, MessageConfidenceRating, &AssessmentResult{IsCorrect: tt.correct}, tt.rating, planNow)

			if action != ActionProcessConfidenceRating {
				t.Fatalf("action = %v, want %v", action, ActionProcessConfidenceRating)
			}
			if s.ConfidenceCalibration != tt.want {
				t.Errorf("calibration = %v, want %v", s.ConfidenceCalibration, tt.want)
			}
			if s.AwaitingConfidenceRating {
				t.Error("AwaitingConfidenceRating not cleared")
			}
		})
	}
}

func TestPlan_ConfidenceRatingWithoutAssessmentKeepsCalibration(t *testing.T) {
	s := DefaultState("u1", "NEET")
	s.MessagesInSession = 5
	s.AwaitingConfidenceRating = true

	Plan(s, MessageConfidenceRating, nil, "4", planNow)

	if s.ConfidenceCalibration != CalibrationUnknown {
		t.Errorf("calibration = %v, want %v", s.ConfidenceCalibration, CalibrationUnknown)
	}
}

func TestPlan_MisconceptionLogged(t *testing.T) {
	s := stateWithPending("q", "moles")
	s.SessionCount = 4

	Plan(s, MessageAnswer, &AssessmentResult{
		Score:         0,
		IsCorrect:     false,
		Misconception: "confuses molarity with molality",
	}, "wrong", planNow)

	if len(s.Misconceptions) != 1 {
		t.Fatalf("misconceptions = %d, want 1", len(s.Misconceptions))
	}
	m := s.Misconceptions[0]
	if m.Concept != "moles" || m.SessionNumber != 4 {
		t.Errorf("misconception = %+v", m)
	}
}

func TestPlan_MessageTypeActions(t *testing.T) {
	tests := []struct {
		msgType MessageType
		want    TutorAction
	}{
		{MessageConfusion, ActionValidateAndPivot},
		{MessageClaimedKnowledge, ActionChallengeClaimedKnow},
		{MessageQuestion, ActionAnswerThenTest},
	}

	for _, tt := range tests {
		t.Run(string(tt.msgType), func(t *testing.T) {
			s := DefaultState("u1", "NEET")
			s.MessagesInSession = 5
			if got := Plan(s, tt.msgType, nil, "msg", planNow); got != tt.want {
				t.Errorf("Plan(%v) = %v, want %v", tt.msgType, got, tt.want)
			}
		})
	}
}

func TestPlan_PhaseLadder(t *testing.T) {
	tests := []struct {
		before     int
		wantPhase  SessionPhase
		wantAction TutorAction
	}{
		{0, PhaseWarmup, ActionWarmupRetrieval},
		{2, PhaseNewConcept, ActionIntroduceNewConcept},
		{6, PhasePractice, ActionInterleavedPractice},
		{16, PhaseMetacognitive, ActionMetacognitiveCheck},
		{22, PhasePreview, ActionPreviewNext},
	}

	for _, tt := range tests {
		s := DefaultState("u1", "NEET")
		s.MessagesInSession = tt.before

		action := Plan(s, MessageGeneral, nil, "msg", planNow)

		if s.SessionPhase != tt.wantPhase {
			t.Errorf("messages %d: phase = %v, want %v", tt.before+1, s.SessionPhase, tt.wantPhase)
		}
		if action != tt.wantAction {
			t.Errorf("messages %d: action = %v, want %v", tt.before+1, action, tt.wantAction)
		}
	}
}

func TestSetPending_BoundsRecentConcepts(t *testing.T) {
	s := DefaultState("u1", "NEET")
	for i := 0; i < 15; i++ {
		s.SetPending("q", string(rune('a'+i)))
	}
	if len(s.LastConceptsTested) != 10 {
		t.Errorf("recent concepts = %d, want 10", len(s.LastConceptsTested))
	}
	if s.LastConceptsTested[0] != "f" {
		t.Errorf("oldest retained concept = %q, want %q", s.LastConceptsTested[0], "f")
	}
}
