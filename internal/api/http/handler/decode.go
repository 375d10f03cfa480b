package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/schema"

	apiErrors "github.com/dtroode/resource-server/internal/api/errors"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

const formContentType = "application/x-www-form-urlencoded"

// formDecoder maps form fields onto the same names the JSON tags use.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeBody reads a JSON or URL-encoded form body into dst.
// An empty body leaves dst zeroed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return apiErrors.NewErrInvalidRequestBody(err)
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return apiErrors.NewErrInvalidRequestBody(err)
		}
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apiErrors.NewErrInvalidRequestBody(err)
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == formContentType
}
