package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"images":[]}`))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "test-agent")
	body, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, `{"images":[]}`, string(body))
	assert.Equal(t, "test-agent", gotUA)
}

func TestClient_Get_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "test-agent")
	_, err := c.Get(context.Background(), srv.URL)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(50*time.Millisecond, "test-agent")
	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestClient_Download_Progress(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 64*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.Write(payload)
	}))
	defer srv.Close()

	var lastRead, lastTotal int64
	c := NewClient(5*time.Second, "test-agent")
	data, err := c.Download(context.Background(), srv.URL, func(read, total int64) {
		lastRead, lastTotal = read, total
	})

	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, int64(len(payload)), lastRead)
	assert.Equal(t, int64(len(payload)), lastTotal)
}

func TestProgressWriter(t *testing.T) {
	var buf bytes.Buffer
	var calls int
	pw := &ProgressWriter{
		Writer:   &buf,
		Total:    10,
		OnUpdate: func(written, total int64) { calls++ },
	}

	pw.Write([]byte("hello"))
	pw.Write([]byte("world"))

	assert.Equal(t, int64(10), pw.Written)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "helloworld", buf.String())
}
