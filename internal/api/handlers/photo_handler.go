// filepath: internal/api/handlers/photo_handler.go
package handlers

import (
	"miocouple/internal/logging"
	"miocouple/internal/models"
	"net/http"

	"github.com/gorilla/mux"
)

// @Summary List memory photos
// @Description Returns all photos on the memory wall, newest first. Tags are decoded to arrays.
// @Tags memory-photos
// @Produce json
// @Success 200 {array} models.MemoryPhoto
// @Failure 500 {object} ErrorResponse
// @Router /memory-photos [get]
func (h *Handlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.Photo.ListPhotos()
	if err != nil {
		respondWithServiceError(w, err, "Failed to fetch photos")
		return
	}
	respondWithJSON(w, http.StatusOK, photos)
}

// @Summary Upload a memory photo
// @Description Uploads a photo via multipart/form-data. File field "image"; text fields title, description, uploaded_by, tags (JSON array string), location.
// @Tags memory-photos
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file (jpeg, jpg, png, gif, webp; max 10MB)"
// @Success 200 {object} PhotoCreatedResponse
// @Failure 400 {object} ErrorResponse "Missing file or required field"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 415 {object} ErrorResponse "Not an allowed image type"
// @Failure 500 {object} ErrorResponse
// @Router /memory-photos [post]
func (h *Handlers) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	maxMemory := h.Cfg.MaxUploadSizeBytes
	if maxMemory <= 0 {
		maxMemory = 10 << 20
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		logging.Log.Warnf("Failed to parse multipart form: %v", err)
		respondWithError(w, http.StatusBadRequest, "Failed to parse multipart form.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	req := models.PhotoCreateRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		UploadedBy:  r.FormValue("uploaded_by"),
		Tags:        r.FormValue("tags"),
		Location:    r.FormValue("location"),
	}

	photo, err := h.Photo.CreatePhoto(req, file, header)
	if err != nil {
		respondWithServiceError(w, err, "Failed to upload photo")
		return
	}

	h.Auditor.Log(r.Context(), "upload_photo", req.UploadedBy, "photo:"+photo.PhotoID, map[string]interface{}{
		"title": photo.Title,
		"size":  header.Size,
	})

	respondWithJSON(w, http.StatusOK, PhotoCreatedResponse{
		Success:  true,
		PhotoID:  photo.PhotoID,
		ImageURL: photo.ImageURL,
		Message:  "Photo uploaded successfully",
	})
}

// @Summary Delete a memory photo
// @Description Deletes the photo row and its stored file. The delete succeeds even if the file is already gone.
// @Tags memory-photos
// @Produce json
// @Param photoId path string true "Photo business key"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /memory-photos/{photoId} [delete]
func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := mux.Vars(r)["photoId"]

	if err := h.Photo.DeletePhoto(photoID); err != nil {
		respondWithServiceError(w, err, "Failed to delete photo")
		return
	}

	h.Auditor.Log(r.Context(), "delete_photo", "", "photo:"+photoID, nil)

	respondWithJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Photo deleted successfully",
	})
}
