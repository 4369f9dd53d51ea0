// Package middleware holds the request interceptors guarding every protected
// route. Both credential kinds (bearer token, guest hash) share one
// interceptor skeleton: extract header, resolve credential, check expiry,
// optionally check a required scope, attach the identity. A wrapped handler
// never observes a request that failed any of those steps.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/api/metrics"
	"github.com/velstore/commerce-api/internal/core/domain"
)

// resolverFunc turns a raw credential string into a caller identity. It
// returns a domain sentinel for every rejectable condition: unknown or
// expired credentials must not surface as internal errors.
type resolverFunc func(ctx context.Context, credential string) (*domain.Identity, error)

// intercept is the shared credential interceptor.
//
//   - label names the credential kind in metrics ("bearer", "guest").
//   - header is the request header carrying the credential.
//   - scheme, when non-empty, is a required authorization scheme prefix
//     ("Bearer"); the header value must be "<scheme> <credential>".
//   - required, when non-empty, is the scope the resolved identity must
//     carry; absence yields 403 instead of 401.
func intercept(label, header, scheme string, resolve resolverFunc, required domain.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(header)
			if raw == "" {
				metrics.AuthDecisionsTotal.WithLabelValues(label, "unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credential")
			}

			credential := raw
			if scheme != "" {
				parts := strings.SplitN(raw, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
					metrics.AuthDecisionsTotal.WithLabelValues(label, "unauthorized").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
				}
				credential = parts[1]
			}

			identity, err := resolve(c.Request().Context(), credential)
			if err != nil {
				if isRejection(err) {
					metrics.AuthDecisionsTotal.WithLabelValues(label, "unauthorized").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
				}
				// Storage failure: let the central error handler log it and
				// answer 500. The credential was not judged.
				return err
			}

			if required != "" && !identity.HasScope(required) {
				metrics.AuthDecisionsTotal.WithLabelValues(label, "forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient scope")
			}

			SetIdentity(c, identity)
			metrics.AuthDecisionsTotal.WithLabelValues(label, "authorized").Inc()
			return next(c)
		}
	}
}

// isRejection reports whether err means "credential judged and refused" as
// opposed to "could not judge". Corrupt or missing stored credentials fail
// closed into a 401.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrTokenNotFound) ||
		errors.Is(err, domain.ErrGuestNotFound) ||
		errors.Is(err, domain.ErrCredentialExpired)
}
