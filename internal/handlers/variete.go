// internal/handlers/variete.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/services"
	"github.com/anvogue/anvogue-admin/internal/utils"
)

type VarieteHandler struct {
	catalogService *services.CatalogService
	workspaces     *services.Workspaces
}

func NewVarieteHandler(catalogService *services.CatalogService, workspaces *services.Workspaces) *VarieteHandler {
	return &VarieteHandler{
		catalogService: catalogService,
		workspaces:     workspaces,
	}
}

// POST /api/articles/:id/varietes/dialog
func (h *VarieteHandler) OpenCreate(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := w.Varietes.OpenByID(c.Param("id"), ""); err != nil {
		utils.NotFoundResponse(c, "article")
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// POST /api/articles/:id/varietes/:vid/dialog
func (h *VarieteHandler) OpenEdit(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := w.Varietes.OpenByID(c.Param("id"), c.Param("vid")); err != nil {
		utils.NotFoundResponse(c, "variete")
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// GET /api/varietes/dialog
func (h *VarieteHandler) GetDialog(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// PATCH /api/varietes/dialog
func (h *VarieteHandler) UpdateFields(c *gin.Context) {
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
	if err := w.Varietes.SetFields(fields); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// DELETE /api/varietes/dialog
func (h *VarieteHandler) Cancel(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	w.Varietes.Cancel()
	dialogResponse(c, w, w.Varietes.View())
}

// POST /api/varietes/dialog/rows
func (h *VarieteHandler) AppendRow(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	row, ok := bindRow(c)
	if !ok {
		return
	}
	if _, err := w.Varietes.AppendRow(row); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// PATCH /api/varietes/dialog/rows/:index
func (h *VarieteHandler) UpdateRow(c *gin.Context) {
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
	if err := w.Varietes.UpdateRow(index, req.Field, req.Value); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// DELETE /api/varietes/dialog/rows/:index
func (h *VarieteHandler) RemoveRow(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	index, ok := rowIndex(c)
	if !ok {
		return
	}
	if err := w.Varietes.RemoveRow(index); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// POST /api/varietes/dialog/images
func (h *VarieteHandler) AddImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationImagesEmpty), nil)
		return
	}

	for _, fileHeader := range files {
		upload, err := readUpload(fileHeader)
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
			return
		}
		if err := w.Varietes.AddImage(c.Request.Context(), upload); err != nil {
			dialogErrorResponse(c, w, err)
			return
		}
	}
	dialogResponse(c, w, w.Varietes.View())
}

// DELETE /api/varietes/dialog/images/:index
func (h *VarieteHandler) RemoveImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "index"), nil)
		return
	}
	if err := w.Varietes.RemoveImage(index); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	dialogResponse(c, w, w.Varietes.View())
}

// POST /api/varietes/dialog/submit
func (h *VarieteHandler) Submit(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	variete, err := w.Varietes.Submit(c.Request.Context())
	if err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	utils.SuccessResponseWithMeta(c, gin.H{
		"variete": variete,
		"dialog":  w.Varietes.View(),
	}, noticesMeta(w))
}

// DELETE /api/varietes/:id
func (h *VarieteHandler) DeleteVariete(c *gin.Context) {
	w, ok := workspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteVariete(c.Request.Context(), c.Param("id"), w.Notices); err != nil {
		dialogErrorResponse(c, w, err)
		return
	}
	utils.SuccessResponseWithMeta(c, gin.H{"id": c.Param("id")}, noticesMeta(w))
}
