package controllers

import (
	"errors"
	"guildpreview/internal/models"
	"guildpreview/internal/presenter"
	"guildpreview/internal/providers"
	"guildpreview/internal/services"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const templateIDParam = "templateId"

type TemplateController struct {
	logger    providers.Logger
	service   services.TemplateServiceInterface
	presenter presenter.HTMLPresenterInterface
}

func NewTemplateController(logger providers.Logger, service services.TemplateServiceInterface, presenter presenter.HTMLPresenterInterface) *TemplateController {
	return &TemplateController{
		logger:    logger,
		service:   service,
		presenter: presenter,
	}
}

func getTemplateID(r *http.Request) (string, error) {
	id := r.URL.Query().Get(templateIDParam)
	v := validate.Map(map[string]any{templateIDParam: id})
	v.StringRule(templateIDParam, "required")
	if !v.Validate() {
		return "", &models.MissingParameterError{Name: templateIDParam}
	}
	return id, nil
}

// writeError maps a failed lookup onto a response. Missing parameters and
// upstream statuses answer with an empty body.
func (tc *TemplateController) writeError(w http.ResponseWriter, templateID string, err error) {
	var (
		missing    *models.MissingParameterError
		upstream   *models.UpstreamError
		validation *models.ValidationError
	)
	switch {
	case errors.As(err, &missing):
		w.WriteHeader(http.StatusBadRequest)
	case errors.As(err, &upstream):
		w.WriteHeader(upstream.StatusCode)
	case errors.As(err, &validation):
		tc.logger.Errorf(providers.TypeApp, "template %s rejected: %s", templateID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	default:
		tc.logger.Errorf(providers.TypeApp, "template %s: %s", templateID, err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}
}

func (tc *TemplateController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := getTemplateID(r)
	if err != nil {
		tc.writeError(w, "", err)
		return
	}

	result, err := tc.service.GetTemplate(r.Context(), templateID)
	if err != nil {
		tc.writeError(w, templateID, err)
		return
	}

	page, err := tc.presenter.RenderTemplate(result)
	if err != nil {
		tc.logger.Errorf(providers.TypeApp, "render template %s: %s", templateID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (tc *TemplateController) GetTemplateJSON(w http.ResponseWriter, r *http.Request) {
	templateID, err := getTemplateID(r)
	if err != nil {
		tc.writeError(w, "", err)
		return
	}

	result, err := tc.service.GetTemplate(r.Context(), templateID)
	if err != nil {
		tc.writeError(w, templateID, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// Index serves the lookup form at "/" and 404s every other unmatched path.
func (tc *TemplateController) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := tc.presenter.RenderIndex()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
