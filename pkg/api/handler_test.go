package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/ReviewLens/internal/sentiment"
)

func trainedPredictor(t *testing.T) *sentiment.Predictor {
	t.Helper()
	reviews := []sentiment.Review{}
	base := []sentiment.Review{
		{Text: "great phone works perfectly", Rating: 5.0},
		{Text: "terrible broke immediately", Rating: 1.0},
		{Text: "its okay nothing special", Rating: 3.0},
	}
	for i := 0; i < 10; i++ {
		reviews = append(reviews, base...)
	}

	artifact, _, err := sentiment.Train(reviews, sentiment.DefaultTrainOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, sentiment.SaveArtifact(path, artifact))

	p := sentiment.NewPredictor()
	require.NoError(t, p.Load(path))
	return p
}

func predictRouter(p *sentiment.Predictor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/predict", PredictHandler(p))
	router.GET("/health", HealthCheckHandler(p))
	return router
}

func TestPredictHandlerModelUnavailable(t *testing.T) {
	router := predictRouter(sentiment.NewPredictor())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"review_text":"great phone"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "model not loaded", body["error"])
}

func TestPredictHandler(t *testing.T) {
	router := predictRouter(trainedPredictor(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"review_text":"absolutely terrible broke"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sentiment  string   `json:"sentiment"`
		Confidence float64  `json:"confidence"`
		Keywords   []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Negative", body.Sentiment)
	assert.Greater(t, body.Confidence, 0.5)
	assert.Equal(t, []string{"absolutely", "terrible", "broke"}, body.Keywords)
}

func TestPredictHandlerEmptyText(t *testing.T) {
	router := predictRouter(trainedPredictor(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"review_text":""}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Sentiment  string   `json:"sentiment"`
		Confidence float64  `json:"confidence"`
		Keywords   []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, []string{"Negative", "Neutral", "Positive"}, body.Sentiment)
	assert.GreaterOrEqual(t, body.Confidence, 0.0)
	assert.LessOrEqual(t, body.Confidence, 1.0)
	assert.NotNil(t, body.Keywords)
	assert.Empty(t, body.Keywords)
}

func TestPredictHandlerBadJSON(t *testing.T) {
	router := predictRouter(trainedPredictor(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"review_text":`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheckHandler(t *testing.T) {
	router := predictRouter(sentiment.NewPredictor())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, false, body["model_loaded"])
}
