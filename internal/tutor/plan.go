package tutor

import (
	"strconv"
	"strings"
	"time"
)

// Plan is the mastery-planner state machine. It mutates the student state
// in place based on the classified message type and the (possibly nil)
// assessment, and returns the pedagogical action for this turn.
//
// Pure computation: no I/O, deterministic given its inputs. now is
// injectable so decay and lastTested stamping are testable.
func Plan(s *StudentState, msgType MessageType, assessment *AssessmentResult, rawMessage string, now time.Time) TutorAction {
	applyAssessment(s, assessment, now)

	s.MessagesInSession++

	switch msgType {
	case MessageGreeting:
		s.SessionPhase = PhaseWarmup
		s.SessionCount++
		s.MessagesInSession = 1
		return ActionWarmupRetrieval

	case MessageConfusion:
		return ActionValidateAndPivot

	case MessageClaimedKnowledge:
		return ActionChallengeClaimedKnow

	case MessageConfidenceRating:
		s.AwaitingConfidenceRating = false
		if assessment != nil {
			// The 1-5 scale treats >=4 as confident. The threshold is
			// contractual: it is observable on the student-facing scale.
			rating, _ := strconv.Atoi(strings.TrimSpace(rawMessage))
			confident := rating >= 4
			switch {
			case confident && !assessment.IsCorrect:
				s.ConfidenceCalibration = CalibrationOverconfident
			case !confident && assessment.IsCorrect:
				s.ConfidenceCalibration = CalibrationUnderconfident
			default:
				s.ConfidenceCalibration = CalibrationCalibrated
			}
		}
		return ActionProcessConfidenceRating

	case MessageAnswer:
		// Failure streak dominates the hint budget: three consecutive
		// failures scaffold back even while hints remain.
		if s.ConsecutiveFailures >= 3 {
			s.PendingQuestion = ""
			s.HintsGiven = 0
			return ActionScaffoldBack
		}
		if assessment == nil {
			// No assessment happened; fall through to phase progression
			// rather than treating the answer as incorrect.
			return phaseAction(s)
		}
		if !assessment.IsCorrect {
			if s.HintsGiven >= 2 {
				s.PendingQuestion = ""
				s.HintsGiven = 0
				return ActionRevealAnswer
			}
			// Keep the pending question so hint tracking continues.
			s.HintsGiven++
			return ActionGiveHint
		}
		if s.ConsecutiveSuccesses >= 3 {
			s.AwaitingConfidenceRating = true
			return ActionEscalateDifficulty
		}
		return ActionInterleavedPractice

	case MessageQuestion:
		return ActionAnswerThenTest

	default:
		return phaseAction(s)
	}
}

// applyAssessment folds an assessment into the concept-mastery record.
// Runs only when an assessment exists and a concept is pending.
func applyAssessment(s *StudentState, assessment *AssessmentResult, now time.Time) {
	if assessment == nil || s.PendingConcept == "" {
		return
	}

	concept := s.PendingConcept
	entry := s.Mastery(concept, now)

	if assessment.IsCorrect {
		entry.SuccessCount++
		s.ConsecutiveFailures = 0
		s.ConsecutiveSuccesses++

		// Score 3 = deep understanding, advance one level.
		// Score 2 = shallow correct, advances only from NEW.
		if assessment.Score == 3 {
			entry.Level = advanceLevel(entry.Level)
		} else if assessment.Score == 2 && entry.Level == LevelNew {
			entry.Level = LevelFragile
		}

		entry.HintsUsed += s.HintsGiven
		s.PendingQuestion = ""
		s.HintsGiven = 0
		s.AwaitingConfidenceRating = false
	} else {
		entry.FailureCount++
		s.ConsecutiveFailures++
		s.ConsecutiveSuccesses = 0

		// SOLID and DEVELOPING regress one level; NEW moves up to
		// FRAGILE, never lower. Pending question and hints are cleared
		// later by the action switch so hint-giving can continue.
		if entry.Level == LevelSolid || entry.Level == LevelDeveloping {
			entry.Level = regressLevel(entry.Level)
		} else if entry.Level == LevelNew {
			entry.Level = LevelFragile
		}
	}

	entry.LastTested = now

	if assessment.Misconception != "" {
		s.Misconceptions = append(s.Misconceptions, Misconception{
			Concept:       concept,
			Misconception: assessment.Misconception,
			SessionNumber: s.SessionCount,
		})
	}
}

// phaseAction advances the session through the pedagogical cycle by
// message count: warmup -> new concept -> practice -> metacognitive ->
// preview.
func phaseAction(s *StudentState) TutorAction {
	switch {
	case s.MessagesInSession > 22:
		s.SessionPhase = PhasePreview
		return ActionPreviewNext
	case s.MessagesInSession > 16:
		s.SessionPhase = PhaseMetacognitive
		return ActionMetacognitiveCheck
	case s.MessagesInSession > 6:
		s.SessionPhase = PhasePractice
		return ActionInterleavedPractice
	case s.MessagesInSession > 2:
		s.SessionPhase = PhaseNewConcept
		return ActionIntroduceNewConcept
	default:
		s.SessionPhase = PhaseWarmup
		return ActionWarmupRetrieval
	}
}
