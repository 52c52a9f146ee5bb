package sink

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		GivenName:       "Ana",
		PaternalSurname: "Lopez",
		MaternalSurname: "",
		BirthDay:        1,
		BirthMonth:      1,
		BirthYear:       1990,
		Sex:             "Female",
		ZodiacSign:      "Horse",
		Score:           6,
		SubmittedAt:     time.Now().UnixMilli(),
	}
}

func TestSubmitAppends(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"name":"-OaB3xUqK9"}`))
	}))
	defer srv.Close()

	c := NewRTDBClient(srv.URL)
	err := c.Submit(context.Background(), validRecord())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/results.json", gotPath)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "Ana", sent["givenName"])
	assert.Equal(t, "Horse", sent["zodiacSign"])
	assert.EqualValues(t, 6, sent["score"])
	assert.Contains(t, sent, "submittedAtEpochMillis")
}

func TestSubmitUnicodeSurvivesWire(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"name":"-OaB3xUqK9"}`))
	}))
	defer srv.Close()

	rec := validRecord()
	rec.PaternalSurname = "Muñoz"
	rec.MaternalSurname = "Peña"
	require.NoError(t, NewRTDBClient(srv.URL).Submit(context.Background(), rec))

	var sent Record
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "Muñoz", sent.PaternalSurname)
	assert.Equal(t, "Peña", sent.MaternalSurname)
}

func TestSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := NewRTDBClient(srv.URL).Submit(context.Background(), validRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSubmitMissingKeyInAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := NewRTDBClient(srv.URL).Submit(context.Background(), validRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key")
}

func TestSubmitRejectsMalformedRecordLocally(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"name":"x"}`))
	}))
	defer srv.Close()

	c := NewRTDBClient(srv.URL)

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"empty given name", func(r *Record) { r.GivenName = "" }},
		{"day out of range", func(r *Record) { r.BirthDay = 32 }},
		{"score out of range", func(r *Record) { r.Score = 7 }},
		{"empty sign", func(r *Record) { r.ZodiacSign = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)
			err := c.Submit(context.Background(), rec)
			require.Error(t, err)
		})
	}
	assert.Zero(t, requests, "invalid records must never reach the wire")
}

func TestSubmitContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewRTDBClient(srv.URL).Submit(ctx, validRecord())
	require.Error(t, err)
}

func TestDisabledSink(t *testing.T) {
	err := Disabled{}.Submit(context.Background(), validRecord())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
