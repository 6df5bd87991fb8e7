package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"simplesocial/internal/server/repository"
	"simplesocial/internal/server/service"
	"simplesocial/internal/shared/models"
)

func (r *Router) handleFeed(w http.ResponseWriter, req *http.Request) {
	posts, err := r.services.Posts.Feed(req.Context(), getUserID(req.Context()))
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "failed to load feed")
		return
	}
	writeJSON(w, http.StatusOK, models.FeedResponse{Posts: posts})
}

func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) {
	if r.maxUploadBytes > 0 {
		req.Body = http.MaxBytesReader(w, req.Body, r.maxUploadBytes)
	}
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		if err.Error() == "http: request body too large" {
			writeDetail(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeDetail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := req.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file field required")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "failed to read file")
		return
	}
	caption := req.FormValue("caption")

	post, err := r.services.Posts.Create(req.Context(), getUserID(req.Context()), header.Filename, header.Header.Get("Content-Type"), data, caption)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedMedia) {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		r.logf("upload failed: %v", err)
		writeDetail(w, http.StatusInternalServerError, "upload failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": post.ID, "url": post.URL})
}

func (r *Router) handleDeletePost(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	err := r.services.Posts.Delete(req.Context(), getUserID(req.Context()), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "post not found")
			return
		}
		r.logf("delete post %s: %v", id, err)
		writeDetail(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (r *Router) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
