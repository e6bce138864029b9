package controller

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "studioe_backend/internals/helpers"
	"studioe_backend/internals/integrations"
)

const maxMediaBytes = 10 << 20

var mediaContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
}

// MediaController uploads blog covers and event flyers to S3. Profile
// photos go through the OSS pipeline instead, which re-encodes them.
type MediaController struct {
	S3 *integrations.S3Uploader
}

func NewMediaController(s3 *integrations.S3Uploader) *MediaController {
	return &MediaController{S3: s3}
}

// POST /api/a/media: multipart field "file"; responds with the public URL.
func (ctrl *MediaController) UploadMedia(c *fiber.Ctx) error {
	if ctrl.S3 == nil {
		return helper.JsonFeatureUnavailable(c, "Media storage")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxMediaBytes {
		return helper.JsonError(c, fiber.StatusBadRequest, "file exceeds 10MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := mediaContentTypes[ext]
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "unsupported file type")
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		log.Printf("[ERROR] media read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read upload")
	}

	base := helper.GenerateSlug(strings.TrimSuffix(fileHeader.Filename, ext))
	if base == "" {
		base = "upload"
	}
	key := fmt.Sprintf("media/%d/%d-%s%s", time.Now().Year(), time.Now().UnixMilli(), base, ext)

	url, err := ctrl.S3.Upload(c.Context(), key, contentType, data)
	if err != nil {
		log.Printf("[ERROR] media upload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store upload")
	}
	return helper.JsonCreated(c, "Media uploaded", fiber.Map{"url": url, "key": key})
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxMediaBytes+1))
}
