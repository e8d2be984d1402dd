package capability

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/spacesedan/revi/internal/models"
	"github.com/spacesedan/revi/internal/textutil"
)

const (
	SENTIMENT_MODEL = "cardiffnlp/twitter-xlm-roberta-base-sentiment"
	EMBEDDING_MODEL = "sentence-transformers/paraphrase-multilingual-MiniLM-L12-v2"

	defaultModelDir = "./models"
)

var (
	hugotInstance *HugotProvider
	hugotInitErr  error
	hugotOnce     sync.Once
)

// HugotProvider runs the multilingual ONNX models locally: an XLM-RoBERTa
// text-classification pipeline for sentiment and a MiniLM feature-extraction
// pipeline for embeddings. After initialization the pipelines are read-only
// and safe for concurrent use.
type HugotProvider struct {
	session   *hugot.Session
	sentiment *pipelines.TextClassificationPipeline
	embedder  *pipelines.FeatureExtractionPipeline
}

// GetHugotProvider initializes the shared provider exactly once per process
// and reuses it afterward, including across concurrent first uses. Models
// are downloaded on first run.
func GetHugotProvider() (*HugotProvider, error) {
	hugotOnce.Do(func() {
		hugotInstance, hugotInitErr = newHugotProvider()
	})
	return hugotInstance, hugotInitErr
}

func newHugotProvider() (*HugotProvider, error) {
	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = defaultModelDir
	}
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("[HugotProvider] failed to create model directory: %w", err)
	}

	sentimentPath, err := ensureModel(SENTIMENT_MODEL, modelDir)
	if err != nil {
		return nil, err
	}
	embeddingPath, err := ensureModel(EMBEDDING_MODEL, modelDir)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("[HugotProvider] failed to initialize Hugot session: %w", err)
	}

	sentimentPipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: sentimentPath,
		Name:      "sentimentPipeline",
	})
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("[HugotProvider] failed to initialize sentiment pipeline: %w", err)
	}

	embeddingPipeline, err := hugot.NewPipeline(session, hugot.FeatureExtractionConfig{
		ModelPath: embeddingPath,
		Name:      "embeddingPipeline",
	})
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("[HugotProvider] failed to initialize embedding pipeline: %w", err)
	}

	slog.Info("[HugotProvider] Pipelines initialized",
		slog.String("sentiment_model", SENTIMENT_MODEL),
		slog.String("embedding_model", EMBEDDING_MODEL))

	return &HugotProvider{
		session:   session,
		sentiment: sentimentPipeline,
		embedder:  embeddingPipeline,
	}, nil
}

func ensureModel(name, modelDir string) (string, error) {
	slog.Info("[HugotProvider] Ensuring model is available", slog.String("model", name))
	path, err := hugot.DownloadModel(name, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("[HugotProvider] failed to download model %s: %w", name, err)
	}
	return path, nil
}

// Destroy tears down the ONNX session. Only the process owner calls this,
// at exit.
func (h *HugotProvider) Destroy() error {
	return h.session.Destroy()
}

// Judge classifies sentiment for one review text.
func (h *HugotProvider) Judge(ctx context.Context, text string) (models.SentimentJudgment, error) {
	if err := ctx.Err(); err != nil {
		return models.SentimentJudgment{}, err
	}

	plain := truncate(textutil.NormalizeForAnalysis(text))
	output, err := h.sentiment.RunPipeline([]string{plain})
	if err != nil {
		return models.SentimentJudgment{}, fmt.Errorf("[HugotProvider] sentiment inference failed: %w", err)
	}

	outputs := output.ClassificationOutputs
	if len(outputs) == 0 || len(outputs[0]) == 0 {
		return models.SentimentJudgment{}, fmt.Errorf("[HugotProvider] empty sentiment output")
	}

	best := outputs[0][0]
	for _, candidate := range outputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return models.SentimentJudgment{
		Label:      strings.ToLower(best.Label),
		Confidence: float64(best.Score),
	}, nil
}

// Similarity is the cosine similarity between two texts' embeddings.
func (h *HugotProvider) Similarity(ctx context.Context, a, b string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	output, err := h.embedder.RunPipeline([]string{truncate(a), truncate(b)})
	if err != nil {
		return 0, fmt.Errorf("[HugotProvider] embedding inference failed: %w", err)
	}
	if len(output.Embeddings) < 2 {
		return 0, fmt.Errorf("[HugotProvider] expected 2 embeddings, got %d", len(output.Embeddings))
	}

	return cosineSimilarity(output.Embeddings[0], output.Embeddings[1]), nil
}

// KeypointSimilarity compares a review against the keypoint set as one
// joined phrase. No keypoints means no relevance signal.
func (h *HugotProvider) KeypointSimilarity(ctx context.Context, text string, keypoints []string) (float64, error) {
	if len(keypoints) == 0 {
		return 0.0, nil
	}
	return h.Similarity(ctx, text, strings.Join(keypoints, " "))
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		if i >= len(b) {
			break
		}
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
