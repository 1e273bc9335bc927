package services

import (
	"context"
	"guildpreview/internal/models"
	"guildpreview/internal/providers"
	"guildpreview/internal/structures"
	"guildpreview/internal/upstream"
)

type TemplateServiceInterface interface {
	GetTemplate(ctx context.Context, templateID string) (*models.TemplateResult, error)
}

type TemplateService struct {
	client  upstream.ClientInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	policy  models.DanglingPolicy
}

// GetTemplate fetches and validates one template and arranges its channels
// into a forest. Errors from the client are returned untouched.
func (ts *TemplateService) GetTemplate(ctx context.Context, templateID string) (*models.TemplateResult, error) {
	tpl, err := ts.client.FetchTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	channels := models.BuildChannelTree(tpl.Channels, ts.policy)

	dropped := 0
	if ts.policy == models.DanglingDrop {
		for _, ch := range models.DanglingChannels(tpl.Channels) {
			dropped++
			ts.logger.Warnf(providers.TypeApp, "template %s: channel %d %q references missing parent %d, dropped", templateID, ch.ID, ch.Name, *ch.ParentID)
		}
	}
	ts.metrics.ObserveChannels(models.CountChannels(channels), dropped)

	roles := tpl.Roles
	if roles == nil {
		roles = []models.RoleRecord{}
	}

	return &models.TemplateResult{
		Code:        tpl.Code,
		Name:        tpl.Name,
		Description: tpl.Description,
		Roles:       roles,
		Channels:    channels,
	}, nil
}

func NewTemplateService(client upstream.ClientInterface, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (TemplateServiceInterface, error) {
	policy, err := models.ParseDanglingPolicy(conf.Tree.DanglingParent)
	if err != nil {
		return nil, err
	}
	return &TemplateService{
		client:  client,
		logger:  logger,
		metrics: metrics,
		policy:  policy,
	}, nil
}
