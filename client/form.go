package client

import (
	"bytes"
	"io"
	"mime/multipart"
)

// FileField is an attachment for a multipart request.
type FileField struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// EncodeForm builds a multipart/form-data body from the given fields
// and optional file. The returned content type carries the boundary
// and must be passed through Options.ContentType untouched.
func EncodeForm(fields map[string]string, file *FileField) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
