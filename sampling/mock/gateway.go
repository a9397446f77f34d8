// Package mock provides a scripted sampling gateway for tests.
package mock

import (
	"context"

	"foodscout/sampling"
)

// Gateway returns canned text or a scripted error and records every request
// it sees, in arrival order.
type Gateway struct {
	Text     string
	Err      error
	Requests []sampling.Request
}

func New(text string, err error) *Gateway {
	return &Gateway{Text: text, Err: err}
}

func (g *Gateway) RequestSampling(ctx context.Context, req sampling.Request) (string, error) {
	g.Requests = append(g.Requests, req)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Text, nil
}
