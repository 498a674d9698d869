package assessment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"psyscreen/internal/bank"
	"psyscreen/internal/questionnaire"
	"psyscreen/internal/scoring"
	"psyscreen/internal/synthesis"
	dErrors "psyscreen/pkg/domain-errors"
)

// Engine drives sessions through the screening → escalation → results
// lifecycle. All transitions are synchronous functions over the passed
// session; the engine itself holds only immutable configuration, so one
// engine serves any number of concurrent sessions.
type Engine struct {
	banks      map[bank.Profile]*bank.Bank
	thresholds scoring.Thresholds
}

// NewEngine builds an engine with the given classification thresholds.
func NewEngine(thresholds scoring.Thresholds) *Engine {
	return &Engine{
		banks: map[bank.Profile]*bank.Bank{
			bank.ProfileMilitary: bank.ForProfile(bank.ProfileMilitary),
			bank.ProfileCivilian: bank.ForProfile(bank.ProfileCivilian),
		},
		thresholds: thresholds,
	}
}

// Bank returns the catalogue for a profile.
func (e *Engine) Bank(profile bank.Profile) *bank.Bank {
	return e.banks[profile]
}

// NewSession creates a fresh session. seed 0 falls back to the clock so
// production order stays randomized while tests can pin it.
func (e *Engine) NewSession(profile bank.Profile, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		ID:           uuid.New(),
		Profile:      profile,
		Stage:        StageStart,
		CreatedAt:    time.Now(),
		Seed:         seed,
		Responses:    make(map[string]int),
		Biographical: make(questionnaire.Answers),
		Screening:    make(map[bank.ScaleID]scoring.ScaleResult),
		Results:      make(map[bank.ScaleID]scoring.ScaleResult),
	}
}

// SubmitQuestionnaire merges biographical answers into the session. Once
// every required field is present the session advances to screening with a
// freshly shuffled queue; until then it stays in the questionnaire stage so
// sections can be submitted one at a time.
func (e *Engine) SubmitQuestionnaire(s *Session, answers questionnaire.Answers) error {
	if s.Stage != StageStart && s.Stage != StageQuestionnaire {
		return dErrors.New(dErrors.CodeInvalidState, "questionnaire is closed at stage "+string(s.Stage))
	}

	for k, v := range answers {
		s.Biographical[k] = v
	}
	s.Stage = StageQuestionnaire

	sections := questionnaire.Sections(s.Profile == bank.ProfileMilitary)
	if len(questionnaire.MissingRequired(sections, s.Biographical)) > 0 {
		return nil
	}

	e.loadScreening(s)
	s.Stage = StageScreening
	return nil
}

// SubmitAnswer records one psychometric answer. The id must be pending and
// the value within 1..5; otherwise the session is left untouched and the
// caller re-prompts. Completing the active queue triggers the escalation
// transition for the stage.
func (e *Engine) SubmitAnswer(s *Session, questionID string, value int) error {
	switch s.Stage {
	case StageScreening, StageMediumRisk, StageHighRisk:
	default:
		return dErrors.New(dErrors.CodeInvalidState, "no question pending at stage "+string(s.Stage))
	}
	if value < 1 || value > 5 {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("answer value %d outside 1..5", value))
	}

	idx := -1
	for i, q := range s.Pending {
		if q.ID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return dErrors.New(dErrors.CodeBadRequest, "question "+questionID+" is not pending")
	}

	// Re-answering an id replaces the prior value.
	s.Responses[questionID] = value
	s.Pending = append(s.Pending[:idx], s.Pending[idx+1:]...)

	if len(s.Pending) == 0 {
		return e.completeQueue(s)
	}
	return nil
}

// ResolveSincerityWarning consumes the participant's decision on a
// low-validity flag: restart screening (biographical answers kept) or
// proceed with the flag recorded.
func (e *Engine) ResolveSincerityWarning(s *Session, restart bool) error {
	if s.Stage != StageSincerityWarning {
		return dErrors.New(dErrors.CodeInvalidState, "no sincerity warning pending")
	}

	if restart {
		s.Responses = make(map[string]int)
		s.Screening = make(map[bank.ScaleID]scoring.ScaleResult)
		s.Results = make(map[bank.ScaleID]scoring.ScaleResult)
		s.MediumQueue = nil
		s.HighQueue = nil
		s.Evaluated = nil
		s.SincerityIgnored = false
		e.loadScreening(s)
		s.Stage = StageScreening
		return nil
	}

	s.SincerityIgnored = true
	e.advanceAfterScreening(s)
	return nil
}

// Restart replaces the session wholesale, optionally carrying the
// biographical record over. With a complete preserved questionnaire the new
// session starts directly at screening.
func (e *Engine) Restart(s *Session, preserveBiographical bool) *Session {
	fresh := e.NewSession(s.Profile, 0)
	fresh.ID = s.ID
	fresh.CreatedAt = s.CreatedAt

	if preserveBiographical {
		fresh.Biographical = s.Biographical.Clone()
		sections := questionnaire.Sections(fresh.Profile == bank.ProfileMilitary)
		if len(questionnaire.MissingRequired(sections, fresh.Biographical)) == 0 {
			e.loadScreening(fresh)
			fresh.Stage = StageScreening
		} else {
			fresh.Stage = StageQuestionnaire
		}
	}
	return fresh
}

// completeQueue runs the §escalation rules once the active queue drains.
func (e *Engine) completeQueue(s *Session) error {
	switch s.Stage {
	case StageScreening:
		return e.completeScreening(s)
	case StageMediumRisk:
		return e.completeMediumPass(s)
	case StageHighRisk:
		return e.completeFullPass(s)
	default:
		return dErrors.New(dErrors.CodeInvalidState, "queue completed at stage "+string(s.Stage))
	}
}

func (e *Engine) completeScreening(s *Session) error {
	b := e.banks[s.Profile]

	for _, scale := range b.RiskScales() {
		r, err := scoring.ScoreTier(b, scale, bank.TierScreening, s.Responses)
		if err != nil {
			return err
		}
		r.Tier = e.thresholds.ClassifyScreening(r)
		s.Screening[scale] = r
		s.Results[scale] = r
		if r.Tier == scoring.RiskMedium {
			s.MediumQueue = append(s.MediumQueue, scale)
		}
	}

	sincerity, err := scoring.ScoreTier(b, bank.ScaleSincerity, bank.TierScreening, s.Responses)
	if err != nil {
		return err
	}
	sincerity.Tier = e.thresholds.ClassifySincerity(sincerity)
	s.Screening[bank.ScaleSincerity] = sincerity
	s.Results[bank.ScaleSincerity] = sincerity

	if sincerity.Tier == scoring.ValidityLow {
		s.Stage = StageSincerityWarning
		s.Pending = nil
		s.ActiveScale = ""
		s.ActiveTier = ""
		return nil
	}

	e.advanceAfterScreening(s)
	return nil
}

func (e *Engine) advanceAfterScreening(s *Session) {
	if len(s.MediumQueue) > 0 {
		e.loadTier(s, s.MediumQueue[0], bank.TierMedium)
		s.Stage = StageMediumRisk
		return
	}
	e.finalize(s)
}

func (e *Engine) completeMediumPass(s *Session) error {
	b := e.banks[s.Profile]
	scale := s.ActiveScale

	r, err := scoring.ScoreTier(b, scale, bank.TierMedium, s.Responses)
	if err != nil {
		return err
	}
	r.Tier = e.thresholds.ClassifyMediumDeepDive(r)
	s.Results[scale] = r

	if r.Tier == scoring.RiskHigh {
		// Escalation confirmed: straight into the full inventory for the
		// same scale, never back to the medium stage for it.
		s.HighQueue = append(s.HighQueue, scale)
		e.loadTier(s, scale, bank.TierFull)
		s.Stage = StageHighRisk
		return nil
	}

	s.Evaluated = append(s.Evaluated, scale)
	s.MediumQueue = removeScale(s.MediumQueue, scale)

	if len(s.MediumQueue) > 0 {
		e.loadTier(s, s.MediumQueue[0], bank.TierMedium)
		s.Stage = StageMediumRisk
		return nil
	}
	if len(s.HighQueue) > 0 {
		e.loadTier(s, s.HighQueue[0], bank.TierFull)
		s.Stage = StageHighRisk
		return nil
	}
	e.finalize(s)
	return nil
}

func (e *Engine) completeFullPass(s *Session) error {
	b := e.banks[s.Profile]
	scale := s.ActiveScale

	r, err := scoring.ScoreTier(b, scale, bank.TierFull, s.Responses)
	if err != nil {
		return err
	}
	r.Tier = e.thresholds.ClassifyFullDeepDive(r)
	s.Results[scale] = r

	s.Evaluated = append(s.Evaluated, scale)
	s.HighQueue = removeScale(s.HighQueue, scale)
	s.MediumQueue = removeScale(s.MediumQueue, scale)

	if len(s.HighQueue) > 0 {
		e.loadTier(s, s.HighQueue[0], bank.TierFull)
		s.Stage = StageHighRisk
		return nil
	}
	if len(s.MediumQueue) > 0 {
		e.loadTier(s, s.MediumQueue[0], bank.TierMedium)
		s.Stage = StageMediumRisk
		return nil
	}
	e.finalize(s)
	return nil
}

// finalize runs synthesis exactly once and parks the session at results.
func (e *Engine) finalize(s *Session) {
	if len(s.MediumQueue) > 0 || len(s.HighQueue) > 0 {
		// The transition rules guarantee empty queues here; reaching this
		// with pending scales is a programming error, not an input fault.
		panic("assessment: synthesis invoked with scales still pending")
	}

	b := e.banks[s.Profile]
	rec := synthesis.Synthesize(s.OrderedResults(b), s.Biographical)
	s.Recommendation = &rec
	s.Stage = StageResults
	s.Pending = nil
	s.ActiveScale = ""
	s.ActiveTier = ""
}

// loadScreening queues every scale's screening items, interleaved and
// shuffled as one pass.
func (e *Engine) loadScreening(s *Session) {
	b := e.banks[s.Profile]
	var queue []bank.Question
	for _, scale := range b.Scales() {
		qs, err := b.QuestionsForTier(scale, bank.TierScreening)
		if err != nil {
			continue
		}
		queue = append(queue, qs...)
	}
	s.Pending = e.shuffle(s, queue)
	s.ActiveScale = ""
	s.ActiveTier = bank.TierScreening
}

func (e *Engine) loadTier(s *Session, scale bank.ScaleID, tier bank.Tier) {
	b := e.banks[s.Profile]
	qs, err := b.QuestionsForTier(scale, tier)
	if err != nil {
		// Tier lists are validated non-empty at catalogue construction.
		panic("assessment: missing tier for queued scale " + string(scale))
	}

	// A queue never holds ids already answered in the current tier pass.
	pending := make([]bank.Question, 0, len(qs))
	for _, q := range qs {
		if _, answered := s.Responses[q.ID]; answered {
			continue
		}
		pending = append(pending, q)
	}

	s.Pending = e.shuffle(s, pending)
	s.ActiveScale = scale
	s.ActiveTier = tier
}

// shuffle randomizes item order within one queue to reduce response-pattern
// bias. Ordering is reproducible from the persisted seed and shuffle count.
func (e *Engine) shuffle(s *Session, qs []bank.Question) []bank.Question {
	r := rand.New(rand.NewSource(s.Seed + int64(s.Shuffles)))
	s.Shuffles++
	out := make([]bank.Question, len(qs))
	copy(out, qs)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func removeScale(scales []bank.ScaleID, target bank.ScaleID) []bank.ScaleID {
	out := scales[:0]
	for _, sc := range scales {
		if sc != target {
			out = append(out, sc)
		}
	}
	return out
}
