package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// Cache lifetime for stored artwork. Image ids are never reused.
const mediaCacheControl = "public, max-age=86400, immutable"

// MediaHandler serves stored artwork
type MediaHandler struct {
	collectionSvc collection.Service
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(collectionSvc collection.Service) *MediaHandler {
	return &MediaHandler{collectionSvc: collectionSvc}
}

// ServeImage writes the bytes of a ready image
// @Summary Get generated image
// @Tags media
// @Produce image/png
// @Param id path int true "Image id"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /media/generated/{id} [get]
func (h *MediaHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, URLParamID)
	if !ok {
		return
	}

	img, err := h.collectionSvc.Image(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpServeImage, err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", mediaCacheControl)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img.Data); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to write image", "image_id", id, "error", err)
	}
}
