package handlers

import (
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tycord/config"
)

// saveUpload stores an optional multipart file under a random name and
// returns its public path. A missing file field is not an error; the empty
// string means "no upload".
func saveUpload(c *gin.Context, cfg *config.Config, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.Uploads.Dir, name)); err != nil {
		return "", err
	}
	return path.Join(cfg.Uploads.PublicURL, name), nil
}
