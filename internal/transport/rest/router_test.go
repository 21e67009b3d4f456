package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mammacheck/internal/cache"
	"mammacheck/internal/completion"
	"mammacheck/internal/conversation"
	"mammacheck/internal/model"
	"mammacheck/internal/script"
	"mammacheck/internal/service"
	"mammacheck/internal/transport/rest"
	"mammacheck/internal/transport/ws"
)

type sessionCacheStub struct {
	mu    sync.Mutex
	metas map[string]*model.SessionMeta
}

func (s *sessionCacheStub) Set(_ context.Context, meta *model.SessionMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *meta
	s.metas[meta.ID] = &clone
	return nil
}

func (s *sessionCacheStub) Get(_ context.Context, id string) (*model.SessionMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.metas[id]
	if !ok {
		return nil, nil
	}
	clone := *meta
	return &clone, nil
}

func (s *sessionCacheStub) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.metas, id)
	return nil
}

type answerCacheStub struct {
	mu    sync.Mutex
	steps map[string]model.AnswerMap
}

func (s *answerCacheStub) SetStep(_ context.Context, sessionID, stepID string, answers model.AnswerMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[sessionID+"/"+stepID] = answers.Clone()
	return nil
}

func (s *answerCacheStub) GetStep(_ context.Context, sessionID, stepID string) (model.AnswerMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps[sessionID+"/"+stepID].Clone(), nil
}

func (s *answerCacheStub) GetAll(_ context.Context, sessionID string, stepIDs []string) (model.AnswerMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make(model.AnswerMap)
	for _, stepID := range stepIDs {
		for k, v := range s.steps[sessionID+"/"+stepID] {
			merged[k] = v
		}
	}
	return merged, nil
}

func (s *answerCacheStub) Clear(_ context.Context, sessionID string, stepIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stepID := range stepIDs {
		delete(s.steps, sessionID+"/"+stepID)
	}
	return nil
}

type statsCacheStub struct {
	mu       sync.Mutex
	counters map[string]int64
}

func (s *statsCacheStub) Incr(_ context.Context, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[field]++
	return nil
}

func (s *statsCacheStub) Snapshot(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out, nil
}

type centerRepoStub struct {
	mu      sync.Mutex
	centers []*model.ScreeningCenter
}

func (s *centerRepoStub) Create(_ context.Context, center *model.ScreeningCenter) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	center.ID = "ctr_test1"
	s.centers = append(s.centers, center)
	return center.ID, nil
}

func (s *centerRepoStub) GetByID(_ context.Context, id string) (*model.ScreeningCenter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.centers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *centerRepoStub) List(_ context.Context, city string, _ int64) ([]*model.ScreeningCenter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.ScreeningCenter
	for _, c := range s.centers {
		if city == "" || c.City == city {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *centerRepoStub) UpsertBySourceID(_ context.Context, center *model.ScreeningCenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.centers = append(s.centers, center)
	return nil
}

type localeRepoStub struct {
	mu      sync.Mutex
	bundles map[string]*model.LocaleBundle
}

func (s *localeRepoStub) Get(_ context.Context, language string) (*model.LocaleBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bundles[language], nil
}

func (s *localeRepoStub) Upsert(_ context.Context, bundle *model.LocaleBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[bundle.Language] = bundle
	return nil
}

func (s *localeRepoStub) Languages(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	langs := make([]string, 0, len(s.bundles))
	for lang := range s.bundles {
		langs = append(langs, lang)
	}
	return langs, nil
}

type responderStub struct {
	reply model.ClarifyReply
}

func (s *responderStub) Clarify(context.Context, string, string, string, []completion.Message) model.ClarifyReply {
	return s.reply
}

type apiFixture struct {
	srv    *httptest.Server
	client *http.Client
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	registry, err := script.NewRegistry()
	require.NoError(t, err)

	authSvc := service.NewAuthService()
	localeSvc := service.NewLocaleService(&localeRepoStub{bundles: make(map[string]*model.LocaleBundle)})
	centerRepo := &centerRepoStub{}
	centerSvc := service.NewCenterService(centerRepo)
	syncSvc := service.NewDirectorySyncService(service.NewDirectoryClient(), centerRepo)
	statsCache := &statsCacheStub{counters: make(map[string]int64)}
	responder := &responderStub{reply: model.ClarifyReply{TextKey: "clarify.generic", Source: model.ClarifyFallback}}

	sessionSvc := service.NewSessionService(
		registry,
		responder,
		&sessionCacheStub{metas: make(map[string]*model.SessionMeta)},
		&answerCacheStub{steps: make(map[string]model.AnswerMap)},
		statsCache,
		authSvc,
		localeSvc,
	)
	hub := ws.NewHub()
	sessionSvc.SetBroadcaster(hub)
	sessionSvc.SetDelays(conversation.Delays{
		Initial:     time.Millisecond,
		Message:     time.Millisecond,
		Question:    time.Millisecond,
		Settle:      time.Millisecond,
		AnswerPause: time.Millisecond,
	})

	router := rest.NewRouter(&rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		CenterService:  centerSvc,
		SyncService:    syncSvc,
		LocaleService:  localeSvc,
		Stats:          statsCache,
		WSHub:          hub,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &apiFixture{srv: srv, client: srv.Client()}
}

func (fx *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, fx.srv.URL+path, rdr)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := fx.client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestPublicEndpoints(t *testing.T) {
	t.Parallel()
	fx := newAPIFixture(t)

	resp := fx.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var steps struct {
		Steps []model.StepInfo `json:"steps"`
	}
	resp = fx.do(t, http.MethodGet, "/v1/steps", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &steps)
	require.Len(t, steps.Steps, 3)
	require.Equal(t, script.StepVisual, steps.Steps[0].StepID)

	var bundle model.LocaleBundle
	resp = fx.do(t, http.MethodGet, "/v1/locales/en", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &bundle)
	require.Equal(t, "Yes", bundle.Entries["common.yes"])

	var centers struct {
		Centers []*model.ScreeningCenter `json:"centers"`
	}
	resp = fx.do(t, http.MethodGet, "/v1/centers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &centers)
	require.NotNil(t, centers.Centers)
	require.Empty(t, centers.Centers)
}

func TestSessionFlowOverHTTP(t *testing.T) {
	t.Parallel()
	fx := newAPIFixture(t)

	var created model.SessionCreated
	resp := fx.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"language": "en"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)
	require.NotEmpty(t, created.SessionID)
	require.NotEmpty(t, created.Token)
	require.Len(t, created.Steps, 3)
	t.Log("session created")

	base := "/v1/sessions/" + created.SessionID

	// No token
	resp = fx.do(t, http.MethodPost, base+"/steps/"+script.StepVisual, "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Token scoped to another session
	var other model.SessionCreated
	resp = fx.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"language": "en"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &other)
	resp = fx.do(t, http.MethodPost, base+"/steps/"+script.StepVisual, other.Token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	t.Log("auth checks hold")

	resp = fx.do(t, http.MethodPost, base+"/steps/"+script.StepVisual, created.Token, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	var view model.TranscriptView
	require.Eventually(t, func() bool {
		req, err := http.NewRequest(http.MethodGet, fx.srv.URL+base+"/transcript", nil)
		if err != nil {
			return false
		}
		req.Header.Set("Authorization", "Bearer "+created.Token)
		resp, err := fx.client.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return false
		}
		if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
			return false
		}
		return view.State == string(conversation.StateAwaiting)
	}, 2*time.Second, 5*time.Millisecond)
	require.NotNil(t, view.ActiveQuestion)
	require.Equal(t, "visual_q_skin_changes", view.ActiveQuestion.QuestionID)
	require.NotEmpty(t, view.Bubbles)
	t.Log("first question revealed")

	resp = fx.do(t, http.MethodPost, base+"/answers", created.Token, map[string]string{
		"questionId": "visual_q_skin_changes",
		"value":      "no",
		"labelKey":   "common.no",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	// Empty clarification text is rejected, real text always gets a bubble.
	resp = fx.do(t, http.MethodPost, base+"/clarifications", created.Token, map[string]string{"text": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	var clarified struct {
		Bubble model.ChatBubble `json:"bubble"`
	}
	resp = fx.do(t, http.MethodPost, base+"/clarifications", created.Token, map[string]string{"text": "how close to the mirror?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &clarified)
	require.Equal(t, model.BubbleAssistant, clarified.Bubble.Kind)
	require.Equal(t, "clarify.generic", clarified.Bubble.TextKey)
	t.Log("clarification answered")

	var result model.RiskResult
	resp = fx.do(t, http.MethodGet, base+"/assessment", created.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &result)
	require.Equal(t, model.RiskLow, result.RiskLevel)
	require.Equal(t, 31, result.MaxScore)
	t.Log("assessment served")

	resp = fx.do(t, http.MethodPost, base+"/reset", created.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodGet, base+"/transcript", created.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &view)
	require.Equal(t, string(conversation.StateIdle), view.State)
	require.Empty(t, view.Bubbles)
}

func TestAdminEndpoints(t *testing.T) {
	t.Parallel()
	fx := newAPIFixture(t)

	resp := fx.do(t, http.MethodPost, "/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	var login model.LoginResponse
	resp = fx.do(t, http.MethodPost, "/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "password123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)

	resp = fx.do(t, http.MethodGet, "/v1/admin/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Session tokens are not admin tokens.
	var created model.SessionCreated
	resp = fx.do(t, http.MethodPost, "/v1/sessions", "", map[string]string{"language": "en"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)
	resp = fx.do(t, http.MethodGet, "/v1/admin/stats", created.Token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	var stats struct {
		Counters map[string]int64 `json:"counters"`
	}
	resp = fx.do(t, http.MethodGet, "/v1/admin/stats", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &stats)
	require.Equal(t, int64(1), stats.Counters[cache.StatSessionsStarted])

	var createdCenter struct {
		ID string `json:"id"`
	}
	resp = fx.do(t, http.MethodPost, "/v1/admin/centers", login.Token, map[string]interface{}{
		"name": "Centre Al Amal",
		"city": "Casablanca",
		"lat":  33.57,
		"lng":  -7.58,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &createdCenter)
	require.NotEmpty(t, createdCenter.ID)

	resp = fx.do(t, http.MethodPost, "/v1/admin/centers", login.Token, map[string]string{"name": "", "city": "Rabat"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	var centers struct {
		Centers []*model.ScreeningCenter `json:"centers"`
	}
	resp = fx.do(t, http.MethodGet, "/v1/centers?city=Casablanca", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &centers)
	require.Len(t, centers.Centers, 1)
	require.Equal(t, "Centre Al Amal", centers.Centers[0].Name)

	// Registry credentials are absent in tests.
	resp = fx.do(t, http.MethodPost, "/v1/admin/centers/sync", login.Token, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodPut, "/v1/admin/locales/fr", login.Token, map[string]interface{}{
		"entries": map[string]string{"common.yes": "Ouais"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var bundle model.LocaleBundle
	resp = fx.do(t, http.MethodGet, "/v1/locales/fr", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &bundle)
	require.Equal(t, "Ouais", bundle.Entries["common.yes"])
	require.Equal(t, "Non", bundle.Entries["common.no"])
}
