package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

// SearchInput is the input schema for the search_cvs tool.
type SearchInput struct {
	Query string `json:"query,omitempty" jsonschema:"text matched against CV titles and owner names, ignoring case; empty lists every CV"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of CVs to return (default 20)"`
}

// SearchOutput is the output schema for the search_cvs tool.
type SearchOutput struct {
	CVs   []CVOutput `json:"cvs"`
	Count int        `json:"count"`
	Total int        `json:"total"`
}

// CVOutput is one CV as returned to clients.
type CVOutput struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LastModified string `json:"last_modified"`
	Removing     bool   `json:"removing,omitempty"`
}

// IDInput identifies one CV.
type IDInput struct {
	ID string `json:"id" jsonschema:"the CV id"`
}

// CreateInput is the input schema for the create_cv tool.
type CreateInput struct {
	Title    string `json:"title" jsonschema:"the CV title"`
	FullName string `json:"full_name,omitempty" jsonschema:"the owner's full name"`
}

// DeleteOutput reports whether a delete was scheduled.
type DeleteOutput struct {
	ID        string `json:"id"`
	Scheduled bool   `json:"scheduled"`
	GraceMS   int64  `json:"grace_ms"`
}

const defaultLimit = 20

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_cvs",
		Description: "Search the CV collection by title or owner name",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_cv",
		Description: "Get one CV by id",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_cv",
		Description: "Create a new CV",
	}, s.handleCreate)

	if s.ports.Deleter != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "delete_cv",
			Description: "Delete a CV after the configured grace interval",
		}, s.handleDelete)
	}
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	cvs, err := s.ports.CV.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("searching cvs: %w", err)
	}

	output := SearchOutput{Total: len(cvs)}
	if len(cvs) > limit {
		cvs = cvs[:limit]
	}
	output.CVs = make([]CVOutput, len(cvs))
	for i := range cvs {
		output.CVs[i] = s.toOutput(&cvs[i])
	}
	output.Count = len(output.CVs)

	return nil, output, nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IDInput,
) (*mcp.CallToolResult, CVOutput, error) {
	cv, err := s.ports.CV.Get(ctx, input.ID)
	if err != nil {
		return nil, CVOutput{}, fmt.Errorf("getting cv %s: %w", input.ID, err)
	}
	return nil, s.toOutput(cv), nil
}

func (s *Server) handleCreate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateInput,
) (*mcp.CallToolResult, CVOutput, error) {
	cv, err := s.ports.CV.Create(ctx, input.Title, input.FullName)
	if err != nil {
		return nil, CVOutput{}, fmt.Errorf("creating cv: %w", err)
	}
	return nil, s.toOutput(cv), nil
}

// handleDelete schedules the delete and returns without waiting for
// the grace interval.
func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IDInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	if _, err := s.ports.CV.Get(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("getting cv %s: %w", input.ID, err)
	}
	scheduled := s.ports.Deleter.RequestDelete(ctx, input.ID)
	return nil, DeleteOutput{
		ID:        input.ID,
		Scheduled: scheduled,
		GraceMS:   s.ports.Deleter.GraceInterval().Milliseconds(),
	}, nil
}

func (s *Server) toOutput(cv *domain.CV) CVOutput {
	out := CVOutput{
		ID:           cv.ID,
		Title:        cv.Title,
		FullName:     cv.PersonalInfo.FullName,
		Email:        cv.PersonalInfo.Email,
		Phone:        cv.PersonalInfo.Phone,
		LastModified: domain.FormatLastModified(cv.LastModified),
	}
	if s.ports.Deleter != nil {
		out.Removing = s.ports.Deleter.IsPending(cv.ID)
	}
	return out
}
