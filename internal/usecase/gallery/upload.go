package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/validation"
)

// Upload validates the pending selection and description, then records the media.
// Validation failures never reach the catalog.
func (c *Controller) Upload(ctx context.Context, in port.UploadInput) (model.Media, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	description := strings.TrimSpace(in.Description)
	var file port.FileSelection
	if in.File != nil {
		file = *in.File
		file.Name = strings.TrimSpace(file.Name)
	}
	if msg := checkUpload(file, description); msg != "" {
		logger.Warnf(ctx, "❌  Upload rejected: %s", msg)
		c.fail(ctx, msg)
		return model.Media{}, &ValidationError{Notice: msg}
	}

	m, err := c.cat.Create(ctx, port.CreateMediaInput{
		FileName:    file.Name,
		Description: description,
		FileType:    model.FileTypeFromMediaType(file.MediaType),
		FileSize:    file.Size,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Could not upload %q: %v", file.Name, err)
		c.fail(ctx, msgUploadFailed)
		return model.Media{}, err
	}

	logger.Infof(ctx, "✅  Uploaded media #%s", m.ID)
	c.succeed(ctx, msgUploaded)
	_ = c.relist(ctx)
	return m, nil
}

// checkUpload expects a trimmed name; a missing selection arrives as the zero value.
func checkUpload(file port.FileSelection, description string) string {
	if file.Name == "" {
		return msgNoFile
	}
	if !model.IsAcceptedMediaType(file.MediaType) {
		return fmt.Sprintf(msgUnsupportedType, file.MediaType)
	}
	return checkDescription(description)
}

func checkDescription(description string) string {
	if description == "" {
		return msgNoDescription
	}
	if err := validation.ValidateVar(description, fmt.Sprintf("max=%d", model.MaxDescriptionLength)); err != nil {
		return msgDescriptionLong
	}
	return ""
}
