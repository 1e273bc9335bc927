package providers

import (
	"fmt"
	"guildpreview/internal/structures"
	"net/url"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %w", v.Errors)
	}
	if u, err := url.Parse(cv.conf.Upstream.BaseUrl); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid config: upstream.baseUrl %q is not an absolute http(s) URL", cv.conf.Upstream.BaseUrl)
	}
	if cv.conf.Throttle.Enabled && (cv.conf.Throttle.Requests <= 0 || cv.conf.Throttle.Window <= 0 || cv.conf.Throttle.Size <= 0) {
		return fmt.Errorf("invalid config: throttle needs positive size, requests and window when enabled")
	}
	return nil
}
