package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-guard/internal/domain"
)

// ListTemplatesInput contains the parameters for listing templates.
type ListTemplatesInput struct{}

// ListTemplatesOutput contains the loaded templates.
type ListTemplatesOutput struct {
	Templates []domain.Template
}

// ListTemplates is the use case for listing issue templates and their required titles.
type ListTemplates struct {
	templates domain.TemplateSource
}

// NewListTemplates creates a new ListTemplates use case.
func NewListTemplates(templates domain.TemplateSource) *ListTemplates {
	return &ListTemplates{templates: templates}
}

// Execute loads the templates.
func (uc *ListTemplates) Execute(ctx context.Context, _ ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates, err := uc.templates.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return &ListTemplatesOutput{Templates: templates}, nil
}
