// Package photostore is the binary object boundary. The attendance modules
// only ever hold the returned reference path; content is never interpreted.
package photostore

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-hostel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

var ErrImageOnly = apperror.New(
	apperror.CodeInvalidInput,
	"images only (jpeg, jpg, png)",
	http.StatusBadRequest,
)

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

var allowedMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

//go:generate mockgen -source=photostore.go -destination=mock/photostore_mock.go -package=mock
type Store interface {
	// Save persists the upload and returns the reference path callers embed
	// in records, e.g. "/uploads/attendance-1710424166.jpg".
	Save(c *gin.Context, field, prefix string) (string, error)
}

type diskStore struct {
	dir string
}

// NewDiskStore stores uploads under dir (served statically by the router).
func NewDiskStore(dir string) Store {
	return &diskStore{dir: dir}
}

func (s *diskStore) Save(c *gin.Context, field, prefix string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil // absent; presence rules belong to the caller
	}

	if err := checkFileType(file); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixNano(), ext)
	dst := filepath.Join(s.dir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "failed to store upload", http.StatusInternalServerError)
	}

	return "/" + filepath.ToSlash(dst), nil
}

func checkFileType(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return ErrImageOnly
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !allowedMimes[ct] {
		return ErrImageOnly
	}
	return nil
}
