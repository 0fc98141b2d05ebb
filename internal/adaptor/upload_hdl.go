package adaptor

import (
	"net/http"
	"path/filepath"
	"strings"

	"rate-am/internal/dto/response"
	"rate-am/pkg/storage"
	"rate-am/pkg/utils"

	"go.uber.org/zap"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	store  storage.Store
	config *utils.Config
	log    *zap.Logger
}

func NewUploadHandler(store storage.Store, config *utils.Config, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		config: config,
		log:    log.With(zap.String("handler", "upload")),
	}
}

// UploadImage handles POST /api/uploads
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	maxBytes := h.config.Storage.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.ResponseBadRequest(w, "File too large or malformed form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		utils.ResponseBadRequest(w, "Only image files are allowed", nil)
		return
	}

	key := utils.GenerateObjectKey(userID.String(), ext)
	url, err := h.store.Save(key, file)
	if err != nil {
		h.log.Error("Failed to save upload",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("key", key),
		)
		utils.ResponseInternalError(w, "Failed to save file")
		return
	}

	h.log.Info("File uploaded",
		zap.String("user_id", userID.String()),
		zap.String("key", key),
		zap.Int64("size", header.Size),
	)

	utils.ResponseCreated(w, "File uploaded successfully", response.UploadResponse{Key: key, URL: url})
}

// DeleteImage handles DELETE /api/uploads
// The key comes from the "key" query parameter. Users may only delete
// objects under their own prefix.
func (h *UploadHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		utils.ResponseBadRequest(w, "Object key is required", nil)
		return
	}

	if !strings.HasPrefix(key, userID.String()+"/") {
		utils.ResponseForbidden(w, "Cannot delete another user's file")
		return
	}

	if err := h.store.Delete(key); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.ResponseNotFound(w, "File not found")
			return
		}
		h.log.Error("Failed to delete upload",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("key", key),
		)
		utils.ResponseInternalError(w, "Failed to delete file")
		return
	}

	utils.ResponseSuccess(w, "File deleted successfully", nil)
}
