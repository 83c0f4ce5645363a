package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Vectorizer converts a raw URL string into the fixed-width feature vector
// the model was fitted against. Implementations are opaque to the gateway.
type Vectorizer interface {
	Transform(rawURL string) []float64
}

// Model is the pre-trained binary classifier. Predict returns 1 for phishing
// and any other value for legitimate; the gateway owns that mapping.
type Model interface {
	Predict(features []float64) int
}

// ngramVectorizer mirrors a fitted character n-gram count vectorizer. The
// vocabulary maps each n-gram to its column index in the feature vector.
type ngramVectorizer struct {
	N          int            `json:"ngram_size"`
	Lowercase  bool           `json:"lowercase"`
	Vocabulary map[string]int `json:"vocabulary"`
}

func (v *ngramVectorizer) Transform(rawURL string) []float64 {
	if v.Lowercase {
		rawURL = strings.ToLower(rawURL)
	}

	features := make([]float64, len(v.Vocabulary))
	if len(rawURL) < v.N {
		return features
	}

	for i := 0; i+v.N <= len(rawURL); i++ {
		if col, ok := v.Vocabulary[rawURL[i:i+v.N]]; ok {
			features[col]++
		}
	}
	return features
}

// linearModel is a fitted linear classifier: output code 1 when the decision
// function is positive.
type linearModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

func (m *linearModel) Predict(features []float64) int {
	score := m.Bias
	for i, w := range m.Weights {
		if i < len(features) {
			score += w * features[i]
		}
	}
	if score > 0 {
		return 1
	}
	return 0
}

// LoadVectorizer reads a fitted vectorizer artifact from disk.
func LoadVectorizer(path string) (Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectorizer artifact: %w", err)
	}

	var v ngramVectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vectorizer artifact: %w", err)
	}
	if v.N <= 0 {
		return nil, fmt.Errorf("vectorizer artifact %s: ngram_size must be positive", path)
	}
	if len(v.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer artifact %s: empty vocabulary", path)
	}
	return &v, nil
}

// LoadModel reads a pre-trained model artifact from disk.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var m linearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model artifact %s: no weights", path)
	}
	return &m, nil
}
