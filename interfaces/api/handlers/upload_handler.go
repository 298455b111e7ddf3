package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload accepts a multipart batch under the "files" field. The kind
// form value selects the bucket and the MIME gate, the prefix value the
// object key folder.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.BadRequestResponse(c, "Expected a multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return utils.BadRequestResponse(c, "No files provided under the files field")
	}

	kind := services.UploadKind(c.FormValue("kind", string(services.UploadKindImage)))
	if kind != services.UploadKindImage && kind != services.UploadKindPDF {
		return utils.BadRequestResponse(c, "kind must be image or pdf")
	}
	prefix := c.FormValue("prefix", "uploads")

	resp, err := h.uploadService.UploadBatch(c.UserContext(), prefix, kind, files)
	if err != nil {
		if errors.Is(err, ports.ErrBucketNotFound) {
			return utils.StorageConfigErrorResponse(c, err.Error())
		}
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, resp)
}
