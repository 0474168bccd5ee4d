package tutor

import "time"

// MasteryLevel is a per-concept confidence-in-knowledge scale.
// Levels move one step at a time; they never jump.
type MasteryLevel string

const (
	LevelNew        MasteryLevel = "NEW"
	LevelFragile    MasteryLevel = "FRAGILE"
	LevelDeveloping MasteryLevel = "DEVELOPING"
	LevelSolid      MasteryLevel = "SOLID"
	LevelMastered   MasteryLevel = "MASTERED"
)

// masteryOrder is the ordered scale used for advance/regress stepping.
var masteryOrder = []MasteryLevel{LevelNew, LevelFragile, LevelDeveloping, LevelSolid, LevelMastered}

// SessionPhase is where in the pedagogical cycle the current session sits.
type SessionPhase string

const (
	PhaseWarmup        SessionPhase = "warmup"
	PhaseNewConcept    SessionPhase = "new_concept"
	PhasePractice      SessionPhase = "practice"
	PhaseMetacognitive SessionPhase = "metacognitive"
	PhasePreview       SessionPhase = "preview"
)

// MessageType categorizes an incoming student message.
type MessageType string

const (
	MessageAnswer           MessageType = "answer"
	MessageQuestion         MessageType = "question"
	MessageGreeting         MessageType = "greeting"
	MessageConfusion        MessageType = "confusion"
	MessageClaimedKnowledge MessageType = "claimed_knowledge"
	MessageConfidenceRating MessageType = "confidence_rating"
	MessageGeneral          MessageType = "general"
)

// ConfidenceCalibration classifies whether a student's self-reported
// confidence matches their actual correctness. Rolling: overwritten each
// time a confidence rating is processed, never accumulated.
type ConfidenceCalibration string

const (
	CalibrationOverconfident  ConfidenceCalibration = "overconfident"
	CalibrationUnderconfident ConfidenceCalibration = "underconfident"
	CalibrationCalibrated     ConfidenceCalibration = "calibrated"
	CalibrationUnknown        ConfidenceCalibration = "unknown"
)

// TutorAction is the pedagogical action chosen by the planner for one turn.
type TutorAction string

const (
	ActionWarmupRetrieval         TutorAction = "warmup_retrieval"
	ActionIntroduceNewConcept     TutorAction = "introduce_new_concept"
	ActionInterleavedPractice     TutorAction = "interleaved_practice"
	ActionGiveHint                TutorAction = "give_hint"
	ActionRevealAnswer            TutorAction = "reveal_answer"
	ActionEscalateDifficulty      TutorAction = "escalate_difficulty"
	ActionScaffoldBack            TutorAction = "scaffold_back"
	ActionValidateAndPivot        TutorAction = "validate_and_pivot"
	ActionChallengeClaimedKnow    TutorAction = "challenge_claimed_knowledge"
	ActionProcessConfidenceRating TutorAction = "process_confidence_rating"
	ActionAnswerThenTest          TutorAction = "answer_then_test"
	ActionMetacognitiveCheck      TutorAction = "metacognitive_check"
	ActionPreviewNext             TutorAction = "preview_next"
	ActionRespondGeneral          TutorAction = "respond_general"
)

// MasteryEntry tracks one concept's mastery for one student.
type MasteryEntry struct {
	Level        MasteryLevel `json:"level"`
	LastTested   time.Time    `json:"last_tested"`
	SuccessCount int          `json:"success_count"`
	FailureCount int          `json:"failure_count"`
	HintsUsed    int          `json:"hints_used"`
}

// Misconception is one entry in the append-only misconception log.
type Misconception struct {
	Concept       string `json:"concept"`
	Misconception string `json:"misconception"`
	SessionNumber int    `json:"session_number"`
}

// StudentState is the per-student knowledge-state record. It is loaded at
// the start of a turn, mutated by the planner, and persisted by the caller.
type StudentState struct {
	UserID                   string
	ExamDomain               string
	SessionPhase             SessionPhase
	SessionCount             int
	MessagesInSession        int
	ConceptMastery           map[string]*MasteryEntry
	Misconceptions           []Misconception
	ConfidenceCalibration    ConfidenceCalibration
	ConsecutiveFailures      int
	ConsecutiveSuccesses     int
	PendingQuestion          string
	PendingConcept           string
	HintsGiven               int
	AwaitingConfidenceRating bool
	LastConceptsTested       []string
}

// maxRecentConcepts bounds the interleaving tracker.
const maxRecentConcepts = 10

// DefaultState returns the documented initial state for a student with no
// persisted record.
func DefaultState(userID, examDomain string) *StudentState {
	if examDomain == "" {
		examDomain = "general"
	}
	return &StudentState{
		UserID:                userID,
		ExamDomain:            examDomain,
		SessionPhase:          PhaseWarmup,
		ConceptMastery:        make(map[string]*MasteryEntry),
		ConfidenceCalibration: CalibrationUnknown,
	}
}

// Mastery returns the entry for a concept, initializing a fresh NEW entry
// if the concept has never been seen. A missing entry is never an error.
func (s *StudentState) Mastery(concept string, now time.Time) *MasteryEntry {
	if s.ConceptMastery == nil {
		s.ConceptMastery = make(map[string]*MasteryEntry)
	}
	if e, ok := s.ConceptMastery[concept]; ok {
		return e
	}
	e := &MasteryEntry{
		Level:      LevelNew,
		LastTested: now,
		HintsUsed:  s.HintsGiven,
	}
	s.ConceptMastery[concept] = e
	return e
}

// SetPending records the question and concept the tutor is now waiting on,
// and appends the concept to the bounded interleaving tracker.
func (s *StudentState) SetPending(question, concept string) {
	if question == "" {
		return
	}
	s.PendingQuestion = question
	if concept != "" {
		s.PendingConcept = concept
		s.LastConceptsTested = append(s.LastConceptsTested, concept)
		if n := len(s.LastConceptsTested); n > maxRecentConcepts {
			s.LastConceptsTested = s.LastConceptsTested[n-maxRecentConcepts:]
		}
	}
}

// AssessmentResult is the assessor's verdict on one answer. It lives only
// within a single turn.
type AssessmentResult struct {
	Score         int    `json:"score"` // 0–3
	IsCorrect     bool   `json:"isCorrect"`
	Misconception string `json:"misconception"`
	Feedback      string `json:"feedback"`
}

// StudentContext is read-only performance data supplied fresh each turn by
// the caller. The core never mutates or persists it.
type StudentContext struct {
	StudentName       string
	ExamName          string
	DaysToExam        *int
	CurrentStreak     int
	QuizAccuracy7Days *float64 // percentage 0–100, nil if no recent quizzes
	TodayTopicsDone   int
	TodayTopicsTotal  int
	RecentWeakTopics  []string
}

func advanceLevel(l MasteryLevel) MasteryLevel {
	for i, m := range masteryOrder {
		if m == l {
			if i+1 < len(masteryOrder) {
				return masteryOrder[i+1]
			}
			return l
		}
	}
	return l
}

func regressLevel(l MasteryLevel) MasteryLevel {
	for i, m := range masteryOrder {
		if m == l {
			if i > 0 {
				return masteryOrder[i-1]
			}
			return l
		}
	}
	return l
}
