package domain

import (
	"context"
	"encoding/json"
	"time"
)

const ContextProfileKey = "performanceProfile"

type Span struct {
	Name    string `json:"name"`
	startTs time.Time
	Elapsed *int64 `json:"elapsed"`
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// Profile tracks where time goes inside a single execute/compare call.
type Profile struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	return json.Marshal(p.Spans)
}

// GetProfile pulls the request profile off ctx; callers that never
// attached one get a fresh throwaway so spans don't panic.
func GetProfile(ctx context.Context) (profile *Profile, endProfile func()) {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok {
		return NewProfile()
	}
	return profile, profile.End
}
