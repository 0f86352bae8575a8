package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

// principalHeader carries the caller identity established by the upstream auth layer.
const principalHeader = "X-Principal-ID"

const principalKey = "catalog.principal_id"

// requirePrincipal rejects requests without a principal.
func requirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := strings.TrimSpace(c.GetHeader(principalHeader))
		if p == "" {
			respondError(c, http.StatusUnauthorized, codeUnauthenticated, "missing "+principalHeader+" header")
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// requireStoreOwner lets the request through only when the principal owns :storeID.
func (h *Handler) requireStoreOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := h.stores.FindStoreOwnedBy(c.Request.Context(), c.Param("storeID"), principal(c))
		if errors.Is(err, domain.ErrStoreNotFound) {
			fail(c, domain.ErrUnauthorized)
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		c.Next()
	}
}

func principal(c *gin.Context) string {
	return c.GetString(principalKey)
}
