package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/spacesedan/revi/internal/models"
)

func TestScoreKnownComposite(t *testing.T) {
	// "ok" against a keypoint-less product pins every sub-score: similarity 0,
	// coverage default 0.3, length 2/30*0.5, verified 0.4, confidence 0,
	// vocabulary 1.0 (one unique word), specificity 0.
	in := ScoreInput{
		Text:    "ok",
		Product: models.ProductContext{ProductID: "p-1"},
	}

	got := Score(in)
	if got != 22.0 {
		t.Errorf("score = %v, want 22.0", got)
	}

	in.IsShadow = true
	if got := Score(in); got != 8.8 {
		t.Errorf("shadow score = %v, want 8.8", got)
	}
}

func TestScoreShadowIsFortyPercent(t *testing.T) {
	in := ScoreInput{
		Text:               "The battery lasts 14 hours, much better than my old one. Very happy.",
		Product:            models.ProductContext{ProductID: "p-1", Keypoints: []string{"battery life", "build quality"}},
		MatchedPoints:      []string{"battery life"},
		IsVerifiedPurchase: true,
		Confidence:         0.9,
		Similarity:         0.7,
	}

	plain := Score(in)
	in.IsShadow = true
	shadow := Score(in)

	if diff := math.Abs(shadow - 0.4*plain); diff > 0.01 {
		t.Errorf("shadow score %v is not 0.4 x %v (diff %v)", shadow, plain, diff)
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []ScoreInput{
		{},
		{Text: strings.Repeat("a", 5000)},
		{
			Text:               "Lasts 12 hours, better than my old one, very reliable battery and screen",
			Product:            models.ProductContext{Keypoints: []string{"battery"}},
			MatchedPoints:      []string{"battery"},
			IsVerifiedPurchase: true,
			Confidence:         1.0,
			Similarity:         1.0,
		},
		{Similarity: -0.5, Confidence: -0.5},
	}

	for i, in := range inputs {
		got := Score(in)
		if got < 0 || got > 100 {
			t.Errorf("input %d: score %v out of [0,100]", i, got)
		}
	}
}

func TestScoreVerifiedDelta(t *testing.T) {
	in := ScoreInput{
		Text:    "Solid build and the hinge feels precise after a month of daily use",
		Product: models.ProductContext{ProductID: "p-1"},
	}

	unverified := Score(in)
	in.IsVerifiedPurchase = true
	verified := Score(in)

	// The verified factor contributes 0.10 x (1.0 - 0.4) of the 100 scale.
	if diff := math.Abs((verified - unverified) - 6.0); diff > 0.01 {
		t.Errorf("verified delta = %v, want 6.0", verified-unverified)
	}
}

func TestCoverageScore(t *testing.T) {
	keypoints := []string{"a", "b", "c", "d"}

	tests := []struct {
		name      string
		matched   []string
		keypoints []string
		want      float64
	}{
		{"no keypoints on product", nil, nil, 0.3},
		{"single match has no bonus", []string{"a"}, keypoints, 0.25},
		{"two matches earn the bonus", []string{"a", "b"}, keypoints, 0.7},
		{"full coverage caps at one", []string{"a", "b", "c", "d"}, keypoints, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coverageScore(tt.matched, tt.keypoints)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("coverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLengthScoreCurve(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{0, 0},
		{15, 0.25},
		{30, 0.5},
		{100, 0.8},
		{300, 1.0},
		{600, 1.0},
		{601, 1.0 - 1.0/1500},
		{3000, 0.85},
	}

	for _, tt := range tests {
		got := lengthScore(tt.length)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("lengthScore(%d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestVocabularyScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty text gets the default", "", 0.3},
		{"repetition is penalized", "good good good", 0.3 + 0.7/3},
		{"all-unique text maxes out", "crisp display with accurate colors", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vocabularyScore(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("vocabulary = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecificityScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"nothing concrete", "it is fine", 0},
		{
			"digits comparison intensifier and a feature term",
			"Lasts 12 hours, better than my old one, very reliable battery",
			0.3 + 0.2 + 0.1 + 0.15,
		},
		{
			"feature term bonus is capped",
			"battery screen material size weight button cable charge camera sound",
			0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := specificityScore(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("specificity = %v, want %v", got, tt.want)
			}
		})
	}
}
