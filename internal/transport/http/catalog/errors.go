package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

// Error codes carried in the response body next to the HTTP status.
const (
	codeInvalidArgument    = "invalid_argument"
	codeUnauthenticated    = "unauthenticated"
	codeForbidden          = "forbidden"
	codeNotFound           = "not_found"
	codeNotEmpty           = "not_empty"
	codeReferential        = "referential_violation"
	codeTemplateIntegrity  = "template_integrity"
	codeProvisioningFailed = "provisioning_failed"
	codeDeadlineExceeded   = "deadline_exceeded"
	codeCanceled           = "canceled"
	codeInternal           = "internal"
)

// mapError translates domain sentinel errors into an HTTP status and code.
// Unknown errors become 500.
func mapError(err error) (int, string) {
	// Integrity is checked before the wrapped cause so a reclassified
	// referential violation stays a 500.
	switch {
	case errors.Is(err, domain.ErrTemplateIntegrity):
		return http.StatusInternalServerError, codeTemplateIntegrity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, codeDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return 499, codeCanceled
	case errors.Is(err, domain.ErrProvisioningFailed):
		return http.StatusInternalServerError, codeProvisioningFailed
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, codeForbidden
	}

	switch {
	case errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrNotEmpty):
		return http.StatusConflict, codeNotEmpty
	case errors.Is(err, domain.ErrReferentialViolation):
		return http.StatusUnprocessableEntity, codeReferential
	}

	switch {
	case errors.Is(err, domain.ErrEmptyCategoryName),
		errors.Is(err, domain.ErrCategoryNameTooLong),
		errors.Is(err, domain.ErrNegativeOrder),
		errors.Is(err, domain.ErrEmptyItemName),
		errors.Is(err, domain.ErrItemNameTooLong),
		errors.Is(err, domain.ErrItemDescriptionTooLong),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, codeInvalidArgument
	}

	return http.StatusInternalServerError, codeInternal
}
