// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"fmt"

	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/models"
)

// Install wires the service into c and seals the method registry:
//   - a provision listener validating every instance of a static candidate
//     type, unless static validation is disabled;
//   - an interceptor around every dynamic candidate method, only when the
//     executable capability is available.
//
// Install must run before c is sealed.
func (s *Service) Install(c *container.Container) error {
	s.registry.Seal()

	if !s.cfg.DisableStatic {
		if err := c.BindListener(container.TypeMatcherFunc(s.IsStaticCandidate), s.dispatcher); err != nil {
			return fmt.Errorf("error binding static validation: %w", err)
		}
	}

	if !s.DynamicValidationSupported() {
		return nil
	}

	matcher := container.MethodMatcherFunc(func(key models.MethodKey) bool {
		return s.IsDynamicTypeCandidate(key.Type) && s.IsDynamicCandidate(key)
	})
	if err := c.BindInterceptor(matcher, s.Intercept); err != nil {
		return fmt.Errorf("error binding dynamic validation: %w", err)
	}

	s.logger.Debug().Msg("validation module installed")
	return nil
}
