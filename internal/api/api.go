package api

import (
	"io"

	"github.com/gin-gonic/gin"
)

// formFileBytes reads the "file" part of a multipart request fully
// into memory and returns its content and original filename.
func formFileBytes(c *gin.Context) ([]byte, string, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, "", err
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return content, header.Filename, nil
}
