package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/queries/list_items"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/queries/list_templates"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/apply_template"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_item"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/delete_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/delete_item"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/update_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/update_item"
)

// Commands groups write interactors.
type Commands struct {
	ApplyTemplate  *apply_template.Interactor
	CreateCategory *create_category.Interactor
	UpdateCategory *update_category.Interactor
	DeleteCategory *delete_category.Interactor
	CreateItem     *create_item.Interactor
	UpdateItem     *update_item.Interactor
	DeleteItem     *delete_item.Interactor
}

// Queries groups read handlers.
type Queries struct {
	ListTemplates  *list_templates.Handler
	ListCategories *list_categories.Handler
	ListItems      *list_items.Handler
}

// Handler is a thin HTTP adapter over the catalog use cases.
// It binds input, maps application DTOs and delegates to the CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
	stores   contracts.CatalogReader
}

func NewHandler(cmd Commands, qry Queries, stores contracts.CatalogReader) *Handler {
	return &Handler{commands: cmd, queries: qry, stores: stores}
}

// Register mounts the /v1 routes on r.
func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/v1", requirePrincipal())
	v1.GET("/templates", h.ListTemplates)

	// The provisioning engine authorizes on its own.
	v1.POST("/stores/:storeID/template", h.ApplyTemplate)

	store := v1.Group("/stores/:storeID", h.requireStoreOwner())
	store.GET("/categories", h.ListCategories)
	store.POST("/categories", h.CreateCategory)
	store.PATCH("/categories/:categoryID", h.UpdateCategory)
	store.DELETE("/categories/:categoryID", h.DeleteCategory)

	store.GET("/items", h.ListItems)
	store.POST("/items", h.CreateItem)
	store.PATCH("/items/:itemID", h.UpdateItem)
	store.DELETE("/items/:itemID", h.DeleteItem)
}

func (h *Handler) ListTemplates(c *gin.Context) {
	respond(c, http.StatusOK, h.queries.ListTemplates.Execute())
}

func (h *Handler) ApplyTemplate(c *gin.Context) {
	var req applyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	res, err := h.commands.ApplyTemplate.Execute(c.Request.Context(), apply_template.Request{
		StoreID:     c.Param("storeID"),
		PrincipalID: principal(c),
		TemplateID:  req.TemplateID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, &dto.ProvisioningResultDTO{
		StoreID:           res.StoreID,
		TemplateID:        res.TemplateID,
		CategoriesRemoved: res.CategoriesRemoved,
		ItemsRemoved:      res.ItemsRemoved,
		CategoriesCreated: res.CategoriesCreated,
		ItemsCreated:      res.ItemsCreated,
	})
}

func (h *Handler) ListCategories(c *gin.Context) {
	out, err := h.queries.ListCategories.Execute(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, out)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	cat, err := h.commands.CreateCategory.Execute(c.Request.Context(), create_category.Request{
		StoreID: c.Param("storeID"),
		Name:    req.Name,
		Order:   req.Order,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.FromCategory(cat))
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}
	if req.empty() {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, "at least one field must be provided")
		return
	}

	cat, err := h.commands.UpdateCategory.Execute(c.Request.Context(), update_category.Request{
		StoreID:    c.Param("storeID"),
		CategoryID: c.Param("categoryID"),
		Name:       req.Name,
		Order:      req.Order,
		Active:     req.Active,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.FromCategory(cat))
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	err := h.commands.DeleteCategory.Execute(c.Request.Context(), delete_category.Request{
		StoreID:    c.Param("storeID"),
		CategoryID: c.Param("categoryID"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListItems(c *gin.Context) {
	var categoryID *string
	if v, ok := c.GetQuery("category_id"); ok {
		categoryID = &v
	}

	out, err := h.queries.ListItems.Execute(c.Request.Context(), c.Param("storeID"), categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, out)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	it, err := h.commands.CreateItem.Execute(c.Request.Context(), create_item.Request{
		StoreID:     c.Param("storeID"),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Active:      active,
		Archived:    req.Archived,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.FromItem(it))
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
		return
	}
	if req.empty() {
		respondError(c, http.StatusBadRequest, codeInvalidArgument, "at least one field must be provided")
		return
	}

	it, err := h.commands.UpdateItem.Execute(c.Request.Context(), update_item.Request{
		StoreID:     c.Param("storeID"),
		ItemID:      c.Param("itemID"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
		Archived:    req.Archived,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, dto.FromItem(it))
}

func (h *Handler) DeleteItem(c *gin.Context) {
	err := h.commands.DeleteItem.Execute(c.Request.Context(), delete_item.Request{
		StoreID: c.Param("storeID"),
		ItemID:  c.Param("itemID"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
