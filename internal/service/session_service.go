package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mammacheck/internal/cache"
	"mammacheck/internal/conversation"
	"mammacheck/internal/model"
	"mammacheck/internal/risk"
	"mammacheck/internal/script"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// sessionIdleTimeout is how long a session may sit untouched before its
// in-memory conversation is evicted. The redis meta outlives eviction, so a
// returning client gets a fresh engine instead of an error.
const sessionIdleTimeout = 2 * time.Hour

type sessionEntry struct {
	engine     *conversation.Session
	language   string
	lastActive time.Time
}

// SessionService owns the live conversation engines and everything around
// them: tokens, redis-backed metadata, answer checkpoints, usage counters
// and websocket fan-out.
type SessionService struct {
	registry    script.Registry
	responder   conversation.Responder
	sessionMeta cache.SessionCache
	answers     cache.AnswerCache
	stats       cache.StatsCache
	authSvc     *AuthService
	localeSvc   *LocaleService
	broadcaster Broadcaster
	delays      conversation.Delays

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionService(
	registry script.Registry,
	responder conversation.Responder,
	sessionMeta cache.SessionCache,
	answers cache.AnswerCache,
	stats cache.StatsCache,
	authSvc *AuthService,
	localeSvc *LocaleService,
) *SessionService {
	return &SessionService{
		registry:    registry,
		responder:   responder,
		sessionMeta: sessionMeta,
		answers:     answers,
		stats:       stats,
		authSvc:     authSvc,
		localeSvc:   localeSvc,
		delays:      conversation.DefaultDelays(),
		sessions:    make(map[string]*sessionEntry),
	}
}

// SetBroadcaster sets the websocket broadcaster (called after hub creation)
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetDelays overrides the reveal pacing for engines created afterwards.
func (s *SessionService) SetDelays(d conversation.Delays) {
	s.delays = d
}

// Create opens an anonymous session and returns its scoped token together
// with the step catalog.
func (s *SessionService) Create(ctx context.Context, language string) (*model.SessionCreated, error) {
	sessionID := "s_" + uuid.New().String()[:8]

	token, err := s.authSvc.GenerateSessionToken(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	language = normalizeLanguage(language)
	meta := &model.SessionMeta{
		ID:        sessionID,
		Language:  language,
		CreatedAt: time.Now(),
	}
	if err := s.sessionMeta.Set(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	// Warm the merged locale table so event resolution is a map hit.
	s.localeSvc.Bundle(ctx, language)

	s.mu.Lock()
	s.sessions[sessionID] = s.newEntry(sessionID, language)
	s.mu.Unlock()

	s.count(ctx, cache.StatSessionsStarted)

	return &model.SessionCreated{
		SessionID: sessionID,
		Token:     token,
		Steps:     s.Steps(),
	}, nil
}

// Steps lists the self-check steps in script order.
func (s *SessionService) Steps() []model.StepInfo {
	scripts := s.registry.All()
	steps := make([]model.StepInfo, 0, len(scripts))
	for _, sc := range scripts {
		steps = append(steps, model.StepInfo{StepID: sc.StepID, TitleKey: sc.TitleKey})
	}
	return steps
}

// InitializeStep starts (or restarts) a step for the session. Unknown step
// ids leave the engine untouched, mirroring the engine's own contract.
func (s *SessionService) InitializeStep(ctx context.Context, sessionID, stepID string) error {
	e, err := s.entry(ctx, sessionID)
	if err != nil {
		return err
	}

	if _, ok := s.registry.Get(stepID); ok {
		if meta, err := s.sessionMeta.Get(ctx, sessionID); err == nil && meta != nil {
			meta.LastStepID = stepID
			if err := s.sessionMeta.Set(ctx, meta); err != nil {
				log.Printf("Failed to update meta for session %s: %v", sessionID, err)
			}
		}
		s.count(ctx, cache.Field(cache.StatStepStarted, stepID))
	}

	e.engine.Initialize(stepID)
	return nil
}

// SubmitAnswer forwards a quick-reply answer to the engine. Stale or
// mismatched submissions are dropped there, so this never fails for them.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, questionID, value, labelKey string) error {
	e, err := s.entry(ctx, sessionID)
	if err != nil {
		return err
	}
	e.engine.SubmitAnswer(questionID, value, labelKey)
	return nil
}

// Clarify answers a free-text question within the session transcript.
func (s *SessionService) Clarify(ctx context.Context, sessionID, freeText string) (*model.ChatBubble, error) {
	e, err := s.entry(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	bubble, source := e.engine.Clarify(ctx, freeText, e.language)

	switch source {
	case model.ClarifyRemote:
		s.count(ctx, cache.StatClarifyRemote)
	case model.ClarifyCached:
		s.count(ctx, cache.StatClarifyCached)
	default:
		s.count(ctx, cache.StatClarifyFallback)
	}
	return &bubble, nil
}

// Reset returns the session to idle and drops its answer checkpoints.
func (s *SessionService) Reset(ctx context.Context, sessionID string) error {
	e, err := s.entry(ctx, sessionID)
	if err != nil {
		return err
	}

	e.engine.Reset()
	if err := s.answers.Clear(ctx, sessionID, s.registry.StepIDs()); err != nil {
		return fmt.Errorf("failed to clear answer checkpoints: %w", err)
	}
	return nil
}

// Transcript snapshots the conversation for a reconnecting client.
func (s *SessionService) Transcript(ctx context.Context, sessionID string) (*model.TranscriptView, error) {
	e, err := s.entry(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &model.TranscriptView{
		SessionID: sessionID,
		StepID:    e.engine.StepID(),
		State:     string(e.engine.State()),
		Bubbles:   e.engine.Transcript(),
	}
	if q := e.engine.ActiveQuestion(); q != nil {
		view.ActiveQuestion = &model.ActiveQuestion{
			QuestionID: q.ID,
			TextKey:    q.TextKey,
			Options:    q.Options,
		}
	}
	return view, nil
}

// Assessment merges the checkpointed answers of completed steps with the
// live engine's answers and scores them. It works even after the engine was
// evicted, as long as the session meta is still cached.
func (s *SessionService) Assessment(ctx context.Context, sessionID string) (*model.RiskResult, error) {
	s.mu.RLock()
	e, live := s.sessions[sessionID]
	s.mu.RUnlock()

	if !live {
		meta, err := s.sessionMeta.Get(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if meta == nil {
			return nil, ErrSessionNotFound
		}
	}

	merged, err := s.answers.GetAll(ctx, sessionID, s.registry.StepIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load answer checkpoints: %w", err)
	}
	if live {
		for k, v := range e.engine.Answers() {
			merged[k] = v
		}
	}

	result := risk.Assess(s.registry.All(), merged)
	s.count(ctx, cache.Field(cache.StatRisk, string(result.RiskLevel)))
	return &result, nil
}

// StartJanitor evicts idle sessions on a fixed interval until ctx ends.
func (s *SessionService) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evictIdle()
			}
		}
	}()
}

func (s *SessionService) evictIdle() {
	cutoff := time.Now().Add(-sessionIdleTimeout)

	type evicted struct {
		id    string
		entry *sessionEntry
	}
	var idle []evicted

	s.mu.Lock()
	for id, e := range s.sessions {
		if e.lastActive.Before(cutoff) {
			idle = append(idle, evicted{id: id, entry: e})
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, ev := range idle {
		ev.entry.engine.Reset()
		if s.broadcaster != nil {
			s.broadcaster.DisconnectSession(ev.id)
		}
	}
	if len(idle) > 0 {
		log.Printf("Evicted %d idle sessions", len(idle))
	}
}

// entry returns the live entry for a session, recreating the engine from
// the cached meta after a restart or eviction.
func (s *SessionService) entry(ctx context.Context, sessionID string) (*sessionEntry, error) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		s.touch(e)
		return e, nil
	}

	meta, err := s.sessionMeta.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if meta == nil {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[sessionID]; ok {
		return e, nil
	}
	e = s.newEntry(sessionID, meta.Language)
	s.sessions[sessionID] = e
	log.Printf("Restored session %s from cache", sessionID)
	return e, nil
}

func (s *SessionService) touch(e *sessionEntry) {
	s.mu.Lock()
	e.lastActive = time.Now()
	s.mu.Unlock()
}

// newEntry builds an engine wired to the websocket event stream. Callers
// hold s.mu or own the entry exclusively.
func (s *SessionService) newEntry(sessionID, language string) *sessionEntry {
	ev := &sessionEvents{svc: s, sessionID: sessionID, language: language}
	engine := conversation.NewSession(sessionID, s.registry, s.responder,
		conversation.WithListener(ev),
		conversation.WithDelays(s.delays),
	)
	return &sessionEntry{
		engine:     engine,
		language:   language,
		lastActive: time.Now(),
	}
}

func (s *SessionService) count(ctx context.Context, field string) {
	if err := s.stats.Incr(ctx, field); err != nil {
		log.Printf("Failed to increment stat %s: %v", field, err)
	}
}

// sessionEvents relays engine events to the websocket hub, resolving text
// keys into the session's language. It runs under the engine lock, so it
// only hands payloads to the broadcaster and spawns the step checkpoint.
type sessionEvents struct {
	svc       *SessionService
	sessionID string
	language  string
}

func (e *sessionEvents) BubbleAppended(b model.ChatBubble) {
	payload := map[string]interface{}{"bubble": b}
	if b.TextKey != "" {
		payload["text"] = e.svc.localeSvc.Resolve(context.Background(), e.language, b.TextKey, nil)
	}
	e.send("bubble_added", payload)
}

func (e *sessionEvents) TypingChanged(active bool) {
	e.send("typing", map[string]interface{}{"active": active})
}

func (e *sessionEvents) OptionsPresented(q model.Question) {
	options := make([]map[string]interface{}, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, map[string]interface{}{
			"value":    opt.Value,
			"labelKey": opt.LabelKey,
			"label":    e.svc.localeSvc.Resolve(context.Background(), e.language, opt.LabelKey, nil),
		})
	}
	e.send("options_presented", map[string]interface{}{
		"questionId": q.ID,
		"options":    options,
	})
}

func (e *sessionEvents) StateChanged(state conversation.State) {
	e.send("state_changed", map[string]interface{}{"state": state})
}

func (e *sessionEvents) StepCompleted(stepID string, answers model.AnswerMap) {
	go e.checkpoint(stepID, answers)
}

func (e *sessionEvents) send(msgType string, payload interface{}) {
	if e.svc.broadcaster != nil {
		e.svc.broadcaster.BroadcastToSession(e.sessionID, msgType, payload)
	}
}

// checkpoint persists a completed step's answers so the assessment can span
// steps after the engine moves on.
func (e *sessionEvents) checkpoint(stepID string, answers model.AnswerMap) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from checkpoint panic for session %s: %v", e.sessionID, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.svc.answers.SetStep(ctx, e.sessionID, stepID, answers); err != nil {
		log.Printf("Failed to checkpoint answers for session %s step %s: %v", e.sessionID, stepID, err)
		return
	}
	e.svc.count(ctx, cache.Field(cache.StatStepCompleted, stepID))
}
