package apihandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personatag/internal/app"
	"personatag/internal/config"
	"personatag/internal/models"
	"personatag/internal/services"
	"personatag/pkg/classifier"
)

const testSecret = "quiz-secret"

type stubClassifier struct {
	result classifier.Result
	usage  classifier.Usage
	err    error
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, req classifier.Request) (classifier.Result, classifier.Usage, error) {
	s.calls++
	return s.result, s.usage, s.err
}

func (s *stubClassifier) Name() string { return "stub" }

func (s *stubClassifier) ModelName() string { return "stub-model" }

type stubProfileStore struct {
	result json.RawMessage
	err    error
	calls  int
}

func (s *stubProfileStore) UpdateCustomerMetafields(ctx context.Context, customerID string, records []models.MetafieldRecord) (json.RawMessage, error) {
	s.calls++
	return s.result, s.err
}

func newTestRouter(cls classifier.Classifier, store services.ProfileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.APISecret = testSecret

	a := &app.App{
		Config:                cfg,
		ClassificationService: services.NewClassificationService(cls),
		ProfileSyncService:    services.NewProfileSyncService(store),
	}

	router := gin.New()
	apiHandler := NewAPIHandler(a)
	v1 := router.Group("/api/v1", RequestID(), SecretGate(cfg.Auth.APISecret))
	v1.POST("/classify", apiHandler.ClassifyHandler)
	v1.POST("/profile/sync", apiHandler.SyncProfileHandler)
	return router
}

func doRequest(router *gin.Engine, path, secret, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-API-Secret", secret)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSecretGateBlocksBothFlows(t *testing.T) {
	cls := &stubClassifier{}
	store := &stubProfileStore{}
	router := newTestRouter(cls, store)

	for _, secret := range []string{"", "wrong-secret"} {
		w := doRequest(router, "/api/v1/classify", secret, `{"answer":"anything"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(router, "/api/v1/profile/sync", secret, `{"customerId":"42","metafields":{"gender":"Female"}}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// No collaborator runs for a rejected request.
	assert.Zero(t, cls.calls)
	assert.Zero(t, store.calls)
}

func TestClassifyHandler(t *testing.T) {
	cls := &stubClassifier{
		result: classifier.Result{
			StyleTags:    []string{"Relaxed & Effortless"},
			FittingTags:  []string{"Oversized"},
			ActivityTags: []string{"Weekend Casual"},
		},
		usage: classifier.Usage{PromptTokens: 120, CompletionTokens: 30, TotalTokens: 150},
	}
	router := newTestRouter(cls, &stubProfileStore{})

	w := doRequest(router, "/api/v1/classify", testSecret, `{"answer":"I love oversized hoodies and sneakers"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Relaxed & Effortless"}, resp.Tags.StyleTags)
	assert.Equal(t, 150, resp.Usage.TotalTokens)
	assert.Equal(t, 1, cls.calls)
}

func TestClassifyHandlerEmptyAnswer(t *testing.T) {
	cls := &stubClassifier{}
	router := newTestRouter(cls, &stubProfileStore{})

	w := doRequest(router, "/api/v1/classify", testSecret, `{"answer":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, cls.calls)
}

func TestClassifyHandlerDoesNotEchoProviderOutput(t *testing.T) {
	rawCompletion := "Sure! Here are your tags in a handy list."
	cls := &stubClassifier{
		err: fmt.Errorf("%w: invalid character 'S'\nresponse content: %s", models.ErrMalformedResponse, rawCompletion),
	}
	router := newTestRouter(cls, &stubProfileStore{})

	w := doRequest(router, "/api/v1/classify", testSecret, `{"answer":"anything"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), rawCompletion)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestClassifyHandlerTaxonomyViolation(t *testing.T) {
	cls := &stubClassifier{
		err: fmt.Errorf("%w: Style: expected 1 to 2 tags, got 3", models.ErrTaxonomyViolation),
	}
	router := newTestRouter(cls, &stubProfileStore{})

	w := doRequest(router, "/api/v1/classify", testSecret, `{"answer":"anything"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "taxonomy_violation")
}

func TestSyncProfileHandler(t *testing.T) {
	store := &stubProfileStore{result: json.RawMessage(`{"customer":{"id":"gid://shopify/Customer/42"},"userErrors":[]}`)}
	router := newTestRouter(&stubClassifier{}, store)

	w := doRequest(router, "/api/v1/profile/sync", testSecret,
		`{"customerId":"42","metafields":{"gender":"Female","style":["Minimal & Modern"]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, store.calls)
	assert.Contains(t, w.Body.String(), "gid://shopify/Customer/42")
}

func TestSyncProfileHandlerStoreError(t *testing.T) {
	store := &stubProfileStore{err: fmt.Errorf("%w: Customer does not exist", models.ErrStore)}
	router := newTestRouter(&stubClassifier{}, store)

	w := doRequest(router, "/api/v1/profile/sync", testSecret,
		`{"customerId":"9999","metafields":{"gender":"Female"}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestSyncProfileHandlerMissingCustomer(t *testing.T) {
	store := &stubProfileStore{}
	router := newTestRouter(&stubClassifier{}, store)

	w := doRequest(router, "/api/v1/profile/sync", testSecret, `{"metafields":{"gender":"Female"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.calls)
}
