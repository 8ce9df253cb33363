package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

// uriScheme is the custom URI scheme for cvdash resources.
const uriScheme = "cvdash://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cvs",
		Name:        "cvs",
		Description: "Every CV in creation order",
		MIMEType:    "application/json",
	}, s.handleCVsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "cvs/{cvId}",
		Name:        "cv",
		Description: "A single CV",
		MIMEType:    "application/json",
	}, s.handleCVResource)
}

func (s *Server) handleCVsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cvs, err := s.ports.CV.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cvs: %w", err)
	}

	out := make([]CVOutput, len(cvs))
	for i := range cvs {
		out[i] = s.toOutput(&cvs[i])
	}
	return jsonResult(req.Params.URI, out)
}

func (s *Server) handleCVResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractCVID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	cv, err := s.ports.CV.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting cv: %w", err)
	}
	return jsonResult(req.Params.URI, s.toOutput(cv))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCVID extracts the id from a URI like cvdash://cvs/{cvId}.
func extractCVID(uri string) string {
	const prefix = uriScheme + "cvs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
