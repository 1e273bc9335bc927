package internal

import (
	"context"
	"guildpreview/internal/presenter"
	"guildpreview/internal/providers"
	"guildpreview/internal/services"
	"io"
)

// Renderer draws a template for the terminal instead of serving it.
type Renderer struct {
	service   services.TemplateServiceInterface
	presenter *presenter.TerminalPresenter
	logger    providers.Logger
}

func NewRenderer(service services.TemplateServiceInterface, presenter *presenter.TerminalPresenter, logger providers.Logger) *Renderer {
	return &Renderer{
		service:   service,
		presenter: presenter,
		logger:    logger,
	}
}

func (r *Renderer) Render(ctx context.Context, templateID string, w io.Writer) error {
	result, err := r.service.GetTemplate(ctx, templateID)
	if err != nil {
		r.logger.Debugf(providers.TypeApp, "render %s: %s", templateID, err)
		return err
	}
	return r.presenter.Render(w, result)
}

func (r *Renderer) Close() {
	r.logger.Close()
}
