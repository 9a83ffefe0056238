// internal/handlers/dialog.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvogue/anvogue-admin/internal/form"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/services"
	"github.com/anvogue/anvogue-admin/internal/utils"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

type rowRequest struct {
	Taille   string  `json:"taille"`
	Quantite int     `json:"quantite"`
	Prix     float64 `json:"prix"`
}

type rowUpdateRequest struct {
	Field string `json:"field" binding:"required,oneof=taille quantite prix"`
	Value string `json:"value"`
}

// workspace resolves the caller's workspace from the session set by AuthRequired.
func workspace(c *gin.Context, spaces *services.Workspaces) (*services.Workspace, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return nil, false
	}
	return spaces.Get(userID), true
}

func noticesMeta(w *services.Workspace) gin.H {
	return gin.H{"notices": w.Notices.Drain()}
}

func dialogResponse(c *gin.Context, w *services.Workspace, view services.DialogView) {
	utils.SuccessResponseWithMeta(c, view, noticesMeta(w))
}

// dialogErrorResponse maps a dialog or submit error onto the response envelope. The message
// is the notice the dialog produced when there is one.
func dialogErrorResponse(c *gin.Context, w *services.Workspace, err error) {
	lang := utils.GetLangFromContext(c)
	notices := w.Notices.Drain()

	message := ""
	if len(notices) > 0 {
		message = notices[len(notices)-1].Message
	}
	meta := gin.H{"notices": notices}

	var unexpected *services.UnexpectedError
	if fe, ok := validation.AsFieldErrors(err); ok {
		if message == "" {
			message = i18n.T(lang, i18n.KeyValidationFailed)
		}
		utils.ErrorResponseWithMeta(c, http.StatusBadRequest, "VALIDATION_ERROR", message, fe, meta)
		return
	}

	switch {
	case errors.Is(err, services.ErrDialogClosed):
		utils.ErrorResponseWithMeta(c, http.StatusConflict, "DIALOG_CLOSED", i18n.T(lang, i18n.KeyDialogClosed), nil, meta)
	case errors.Is(err, services.ErrSubmitInProgress):
		utils.ErrorResponseWithMeta(c, http.StatusConflict, "SUBMIT_IN_PROGRESS", i18n.T(lang, i18n.KeyDialogBusy), nil, meta)
	case errors.Is(err, services.ErrStaleResponse):
		utils.ErrorResponseWithMeta(c, http.StatusConflict, "STALE_RESPONSE", i18n.T(lang, i18n.KeyDialogClosed), nil, meta)
	case errors.Is(err, services.ErrArticleNotSelected):
		utils.ErrorResponseWithMeta(c, http.StatusConflict, "NO_ARTICLE", i18n.T(lang, i18n.KeyVarieteNoArticle), nil, meta)
	case errors.Is(err, form.ErrRowsValue):
		utils.ErrorResponseWithMeta(c, http.StatusBadRequest, "BAD_REQUEST", i18n.T(lang, i18n.KeyValidationInvalid, "rows"), nil, meta)
	case errors.Is(err, form.ErrRowIndex):
		utils.ErrorResponseWithMeta(c, http.StatusBadRequest, "BAD_REQUEST", i18n.T(lang, i18n.KeyValidationInvalid, "index"), nil, meta)
	case errors.Is(err, services.ErrNotFound):
		utils.ErrorResponseWithMeta(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil, meta)
	case errors.As(err, &unexpected):
		utils.ErrorResponseWithMeta(c, http.StatusInternalServerError, "UNEXPECTED_ERROR", i18n.T(lang, i18n.KeyUnexpectedError), nil, meta)
	default:
		status, code := utils.BackendErrorStatus(err)
		if message == "" {
			message = err.Error()
		}
		utils.ErrorResponseWithMeta(c, status, code, message, nil, meta)
	}
}

func rowIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyValidationInvalid, "index"), nil)
		return 0, false
	}
	return index, true
}

// bindRow reads an optional row body; an empty body appends a blank row.
func bindRow(c *gin.Context) (models.SizeRow, bool) {
	var req rowRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyValidationInvalid, "row"), err.Error())
			return models.SizeRow{}, false
		}
	}
	return models.SizeRow{Taille: req.Taille, Quantite: req.Quantite, Prix: req.Prix}, true
}

// readUpload buffers a multipart file. Reading stops one byte past the size limit so an
// oversized file is still reported as such without being held in full.
func readUpload(fh *multipart.FileHeader) (*models.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, validation.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return &models.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// optionalUpload returns the file sent under field, or nil when there is none.
func optionalUpload(c *gin.Context, field string) (*models.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return readUpload(fh)
}
