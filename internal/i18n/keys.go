// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationFailed      = "validation.failed"
	KeyValidationInvalid     = "validation.invalid"
	KeyValidationRequired    = "validation.required"
	KeyValidationNotNumber   = "validation.not_number"
	KeyValidationNotInteger  = "validation.not_integer"
	KeyValidationNegative    = "validation.negative"
	KeyValidationEmpty       = "validation.empty"
	KeyValidationEnum        = "validation.enum"
	KeyValidationEmail       = "validation.email"
	KeyValidationMinLength   = "validation.min_length"
	KeyValidationDate        = "validation.date"
	KeyValidationRows        = "validation.rows"
	KeyValidationFileEmpty   = "validation.file_empty"
	KeyValidationFileTooBig  = "validation.file_too_big"
	KeyValidationFileType    = "validation.file_type"
	KeyValidationImagesEmpty = "validation.images_required"

	// Authentication
	KeyAuthRequired        = "auth.required"
	KeyAuthInvalidToken    = "auth.invalid_token"
	KeyAuthTokenExpired    = "auth.token_expired"
	KeyAuthLoginSuccess    = "auth.login_success"
	KeyAuthRegisterFailed  = "auth.register_failed"
	KeyAuthLoginFailed     = "auth.login_failed"
	KeyAuthRegisterSuccess = "auth.register_success"

	// Articles
	KeyArticleCreated      = "article.created"
	KeyArticleUpdated      = "article.updated"
	KeyArticleDeleted      = "article.deleted"
	KeyArticleCreateFailed = "article.create_failed"
	KeyArticleUpdateFailed = "article.update_failed"
	KeyArticleDeleteFailed = "article.delete_failed"
	KeyArticleNotFound     = "article.not_found"
	KeyArticleReloaded     = "article.reloaded"

	// Varietes
	KeyVarieteCreated      = "variete.created"
	KeyVarieteUpdated      = "variete.updated"
	KeyVarieteDeleted      = "variete.deleted"
	KeyVarieteCreateFailed = "variete.create_failed"
	KeyVarieteUpdateFailed = "variete.update_failed"
	KeyVarieteDeleteFailed = "variete.delete_failed"
	KeyVarieteNotFound     = "variete.not_found"
	KeyVarieteNoArticle    = "variete.article_required"

	// Files
	KeyFileUploadFailed = "file.upload_failed"

	// Catalog
	KeyCategoryNone   = "catalog.category_none"
	KeyCollectionNone = "catalog.collection_none"

	// Dialogs
	KeyDialogClosed     = "dialog.closed"
	KeyDialogBusy       = "dialog.busy"
	KeyUnexpectedError  = "error.unexpected"
	KeyBackendMalformed = "error.backend_malformed"
	KeyBackendUnreached = "error.backend_unreachable"
	KeyRateLimited      = "error.rate_limited"
)
