package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/memory"
	"github.com/gradsuite/cvdash/internal/core/services"
)

func TestExtractCVID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid cv URI", "cvdash://cvs/cv-123", "cv-123"},
		{"invalid prefix", "file://cvs/cv-123", ""},
		{"collection URI", "cvdash://cvs", ""},
		{"nested path", "cvdash://cvs/cv-123/extra", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCVID(tt.uri))
		})
	}
}

func TestServer_handleCVsResource(t *testing.T) {
	f := newFixture(t)

	result, err := f.server.handleCVsResource(context.Background(), makeReadResourceRequest("cvdash://cvs"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var cvs []CVOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &cvs))
	require.Len(t, cvs, 3)
	assert.Equal(t, "Backend Engineer", cvs[0].Title)
}

func TestServer_handleCVsResource_Error(t *testing.T) {
	svc := &failingCVService{CVService: services.NewCVService(memory.NewCVStore()), err: errors.New("database locked")}
	server, err := NewServer(&Ports{CV: svc})
	require.NoError(t, err)

	_, err = server.handleCVsResource(context.Background(), makeReadResourceRequest("cvdash://cvs"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing cvs")
}

func TestServer_handleCVResource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("returns the cv", func(t *testing.T) {
		result, err := f.server.handleCVResource(ctx, makeReadResourceRequest("cvdash://cvs/b"))

		require.NoError(t, err)
		var cv CVOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &cv))
		assert.Equal(t, "Designer", cv.Title)
		assert.Equal(t, "Bob Jones", cv.FullName)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := f.server.handleCVResource(ctx, makeReadResourceRequest("cvdash://cvs/missing"))
		assert.Error(t, err)
	})

	t.Run("malformed uri is not found", func(t *testing.T) {
		_, err := f.server.handleCVResource(ctx, makeReadResourceRequest("cvdash://other"))
		assert.Error(t, err)
	})
}
