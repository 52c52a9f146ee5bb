// Package sink writes final quiz results to the remote result store.
package sink

import (
	"context"
	"errors"
)

// Record is the flat result written to the sink. The server names the
// key; the client never chooses or reuses one.
type Record struct {
	GivenName       string `json:"givenName"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	BirthDay        int    `json:"birthDay"`
	BirthMonth      int    `json:"birthMonth"`
	BirthYear       int    `json:"birthYear"`
	Sex             string `json:"sex"`
	ZodiacSign      string `json:"zodiacSign"`
	Score           int    `json:"score"`
	SubmittedAt     int64  `json:"submittedAtEpochMillis"`
}

// Sink accepts appends of result records.
type Sink interface {
	// Submit appends one record. Each call is an independent attempt;
	// there is no deduplication across retries.
	Submit(ctx context.Context, rec Record) error
}

// ErrNotConfigured is returned when no sink endpoint is set. The flow
// treats it like any other submission failure: surfaced, retryable
// once, then dropped.
var ErrNotConfigured = errors.New("result sink not configured (set ZODICO_SINK_URL)")

// Disabled is the sink used when no endpoint is configured.
type Disabled struct{}

func (Disabled) Submit(context.Context, Record) error {
	return ErrNotConfigured
}
