package classifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrUnavailable is the only error the gateway surfaces for a failed
// classification: artifact trouble, a panicking model, or a timeout all look
// the same to the caller and never mutate anything.
var ErrUnavailable = errors.New("classification unavailable")

// Gateway runs exactly one classification per call. It does not gate on
// credits or write history; that bookkeeping belongs to the check flow.
type Gateway struct {
	vectorizer Vectorizer
	model      Model
	timeout    time.Duration
}

func NewGateway(v Vectorizer, m Model, timeout time.Duration) *Gateway {
	return &Gateway{vectorizer: v, model: m, timeout: timeout}
}

// Classify passes the URL, unmodified and unvalidated, through the vectorizer
// and the model. Output code 1 maps to Phishing, anything else to Legitimate.
func (g *Gateway) Classify(ctx context.Context, rawURL string) (Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type prediction struct {
		code int
		err  error
	}
	ch := make(chan prediction, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- prediction{err: fmt.Errorf("classifier panic: %v", r)}
			}
		}()
		ch <- prediction{code: g.model.Predict(g.vectorizer.Transform(rawURL))}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[classifier] timed out after %s", g.timeout)
		return "", ErrUnavailable
	case p := <-ch:
		if p.err != nil {
			log.Printf("[classifier] error: %v", p.err)
			return "", ErrUnavailable
		}
		if p.code == 1 {
			return VerdictPhishing, nil
		}
		return VerdictLegitimate, nil
	}
}
