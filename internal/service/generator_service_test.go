package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsDocument(t *testing.T) {
	blob := []byte{0x50, 0x4b, 0x03, 0x04}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		txt, txtHeader, err := r.FormFile("txt_file")
		require.NoError(t, err)
		txtBody, err := io.ReadAll(txt)
		require.NoError(t, err)
		assert.Equal(t, "template.txt", txtHeader.Filename)
		assert.Equal(t, "letter body", string(txtBody))

		_, csvHeader, err := r.FormFile("csv_file")
		require.NoError(t, err)
		assert.Equal(t, "data.csv", csvHeader.Filename)

		w.Write(blob)
	}))
	defer srv.Close()

	svc := &GeneratorService{WebhookURL: srv.URL}
	doc, err := svc.Generate("template.txt", "letter body", "data.csv", "a,b")
	require.NoError(t, err)
	assert.Equal(t, blob, doc)
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken template", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	svc := &GeneratorService{WebhookURL: srv.URL}
	_, err := svc.Generate("t.txt", "body", "d.csv", "a,b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestGenerateEmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	svc := &GeneratorService{WebhookURL: srv.URL}
	_, err := svc.Generate("t.txt", "body", "d.csv", "a,b")
	require.Error(t, err)
}
