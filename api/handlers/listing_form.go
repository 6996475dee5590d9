package handlers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/bigwigdigital/kpd-realty-api/storage"
)

// maxUploadMemory is the in-memory budget handed to ParseMultipartForm; larger
// files spill to disk
const maxUploadMemory = 64 << 20

// maxListingImages caps how many images one listing may carry
const maxListingImages = 50

var (
	slugStrip  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
)

// slugify turns a listing title into its SEO-friendly URL slug
func slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return slugSpaces.ReplaceAllString(s, "-")
}

// floatOrNil converts a form value to a float pointer, mapping empty or
// unparseable input to nil so it is stored as null
func floatOrNil(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// intOrNil converts a form value to an int pointer, mapping empty or
// unparseable input to nil
func intOrNil(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// stringList decodes a JSON-array form value, falling back to an empty list
func stringList(v string) []string {
	out := []string{}
	if v == "" {
		return out
	}
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		return []string{}
	}
	return out
}

// formHas reports whether the multipart form carried the field at all, so
// PATCH can tell "absent" apart from "set to empty"
func formHas(r *http.Request, key string) bool {
	if r.MultipartForm == nil {
		return false
	}
	_, ok := r.MultipartForm.Value[key]
	return ok
}

// uploadImages stores every uploaded file and returns the resulting URLs
func uploadImages(ctx context.Context, up storage.Uploader, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		url, err := up.Upload(ctx, f, fh.Filename)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
