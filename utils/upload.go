package utils

import (
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveImage stores an uploaded file under dir with a random name, keeping the
// original extension, and returns the stored filename.
func SaveImage(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// RemoveImage unlinks a previously stored file. A missing file is logged, not
// an error: the row is already gone either way.
func RemoveImage(dir, filename string) {
	if filename == "" || strings.HasPrefix(filename, "http") {
		return
	}
	if err := os.Remove(filepath.Join(dir, filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("[upload] failed to remove %s: %v", filename, err)
	}
}

// ImageURL turns a stored filename into the public URL. Values that are
// already absolute URLs pass through untouched.
func ImageURL(baseURL, filename string) string {
	if filename == "" || strings.HasPrefix(filename, "http") {
		return filename
	}
	return baseURL + "/uploads/" + filename
}
