// internal/handlers/article.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/services"
	"github.com/anvogue/anvogue-admin/internal/utils"
)

type ArticleHandler struct {
	catalogService *services.CatalogService
	workspaces     *services.Workspaces
}

func NewArticleHandler(catalogService *services.CatalogService, workspaces *services.Workspaces) *ArticleHandler {
	return &ArticleHandler{
		catalogService: catalogService,
		workspaces:     workspaces,
	}
}

// ArticleView is an article with its category and collection labels resolved.
type ArticleView struct {
	models.Article
	CategorieNom  string `json:"categorie_nom"`
	CollectionNom string `json:"collection_nom"`
}

// GET /api/articles
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	articles := h.catalogService.Search(c.Query("search"))

	views := make([]ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, ArticleView{
			Article:       a,
			CategorieNom:  h.catalogService.CategoryName(lang, a.CategorieID),
			CollectionNom: h.catalogService.CollectionName(lang, a.CollectionID),
		})
	}

	utils.SuccessResponseWithMeta(c, views, gin.H{
		"total":   len(views),
		"version": h.catalogService.Store().Snapshot().Version(),
	})
}

// POST /api/articles/reload
func (h *ArticleHandler) ReloadArticles(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	if err := h.catalogService.Load(c.Request.Context()); err != nil {
		utils.BackendErrorResponse(c, err, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyArticleReloaded),
		"total":   h.catalogService.Store().Snapshot().Len(),
	})
}

// DELETE /api/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteArticle(c.Request.Context(), c.Param("id"), w.Notices); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	utils.SuccessResponseWithMeta(c, gin.H{"id": c.Param("id")}, noticesMeta(w))
}

// POST /api/articles/dialog
func (h *ArticleHandler) OpenCreate(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	w.Articles.OpenCreate()
	dialogResponse(c, w, w.Articles.View())
}

// POST /api/articles/:id/dialog
func (h *ArticleHandler) OpenEdit(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := w.Articles.OpenEditByID(c.Param("id")); err != nil {
		utils.NotFoundResponse(c, "article")
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// GET /api/articles/dialog
func (h *ArticleHandler) GetDialog(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// PATCH /api/articles/dialog
func (h *ArticleHandler) UpdateFields(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if err := w.Articles.SetFields(fields); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// DELETE /api/articles/dialog
func (h *ArticleHandler) Cancel(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	w.Articles.Cancel()
	dialogResponse(c, w, w.Articles.View())
}

// POST /api/articles/dialog/rows
func (h *ArticleHandler) AppendRow(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	row, ok := bindRow(c)
	if !ok {
		return
	}
	if _, err := w.Articles.AppendRow(row); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// PATCH /api/articles/dialog/rows/:index
func (h *ArticleHandler) UpdateRow(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	index, ok := rowIndex(c)
	if !ok {
		return
	}

	var req rowUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "row"), err.Error())
		return
	}
	if err := w.Articles.UpdateRow(index, req.Field, req.Value); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// DELETE /api/articles/dialog/rows/:index
func (h *ArticleHandler) RemoveRow(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	index, ok := rowIndex(c)
	if !ok {
		return
	}
	if err := w.Articles.RemoveRow(index); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// PUT /api/articles/dialog/image
func (h *ArticleHandler) SetImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	upload, err := readUpload(fh)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	if err := w.Articles.SetImage(c.Request.Context(), upload); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// DELETE /api/articles/dialog/image
func (h *ArticleHandler) ClearImage(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := w.Articles.ClearImage(); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Articles.View())
}

// POST /api/articles/dialog/submit
func (h *ArticleHandler) Submit(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	article, err := w.Articles.Submit(c.Request.Context())
	if err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	utils.SuccessResponseWithMeta(c, gin.H{
		"article": article,
		"dialog":  w.Articles.View(),
	}, noticesMeta(w))
}
