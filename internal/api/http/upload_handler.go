package http

import (
	"fmt"
	"net/http"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/storage"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// UploadHandler accepts multipart uploads and hands them to the storage
// gateway. It returns object references; attaching them to a training is the
// caller's job via the training endpoints.
type UploadHandler struct {
	store         storage.ObjectStorage
	defaultFolder string
	maxFileBytes  int64
}

func NewUploadHandler(store storage.ObjectStorage, defaultFolder string, maxFileSizeMB int) *UploadHandler {
	return &UploadHandler{
		store:         store,
		defaultFolder: defaultFolder,
		maxFileBytes:  int64(maxFileSizeMB) << 20,
	}
}

type uploadResponse struct {
	Files []storage.ObjectInfo `json:"files"`
}

type deleteFilesRequest struct {
	PublicIDs []string `json:"public_ids" validate:"required,min=1"`
}

type deleteFilesResponse struct {
	Results []storage.DeleteResult `json:"results"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxFileBytes); err != nil {
		writeError(w, domain.NewValidationError("files", "invalid or oversized multipart body"))
		return
	}

	folder := r.FormValue("folder")
	if folder == "" {
		folder = h.defaultFolder
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, domain.NewValidationError("files", "at least one file is required"))
		return
	}

	files := make([]storage.File, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		contentType := fh.Header.Get("Content-Type")
		if !allowedUploadTypes[contentType] {
			writeError(w, domain.NewValidationError("files", fmt.Sprintf("unsupported content type %s", contentType)))
			return
		}
		if fh.Size > h.maxFileBytes {
			writeError(w, domain.NewValidationError("files", fmt.Sprintf("%s exceeds the size limit", fh.Filename)))
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeError(w, domain.NewValidationError("files", "unreadable file part"))
			return
		}
		defer f.Close()
		files = append(files, storage.File{
			Name:        fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			Reader:      f,
		})
	}

	infos, err := h.store.UploadMany(r.Context(), files, folder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Files: infos})
}

func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteFilesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	results, err := h.store.DeleteMany(r.Context(), req.PublicIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteFilesResponse{Results: results})
}
