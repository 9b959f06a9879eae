package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/domain"
)

// UploadResponse is the body of every /upload response. On success URL is the
// public reference path; on failure Message explains the rejection.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`
}

type UploadController struct {
	Logger  *slog.Logger
	Service domain.UploadService
}

func NewUploadController(logger *slog.Logger, svc domain.UploadService) *UploadController {
	return &UploadController{
		Logger:  logger,
		Service: svc,
	}
}

// Upload godoc
// @Summary Upload an event image
// @Description Accepts a multipart form with a single "file" field. The file must be present, at most 5 MiB, declare an image media type, and carry an allowed extension - checked in that order.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} UploadResponse
// @Failure 500 {object} UploadResponse
// @Router /upload [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, UploadResponse{Success: false, Message: domain.ErrNoFile.Message})
		return
	}
	defer file.Close()

	url, err := c.Service.Store(r.Context(), domain.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		File:        file,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSON(w, http.StatusBadRequest, UploadResponse{Success: false, Message: verr.Message})
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, UploadResponse{Success: false, Message: "failed to upload file"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UploadResponse{Success: true, URL: url})
}
