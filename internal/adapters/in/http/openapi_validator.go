package http

import (
	"errors"
	"fmt"
	"net/http"

	"forwarding/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks API requests against the OpenAPI document
// before they reach the server. Requests outside the document, such as
// /health or the swagger UI, pass through untouched.
//
// The document is modified: its servers are dropped so routes match on the
// path alone.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	doc.Servers = nil

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		MultiError: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if isUnknownRoute(err) {
				return next(ctx)
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}

// isUnknownRoute reports whether err means the request has no operation in
// the document. The router builds a fresh RouteError each time, so the
// sentinels only match by reason.
func isUnknownRoute(err error) bool {
	var routeErr *routers.RouteError
	if !errors.As(err, &routeErr) {
		return false
	}
	return routeErr.Reason == routers.ErrPathNotFound.Error() ||
		routeErr.Reason == routers.ErrMethodNotAllowed.Error()
}
