package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"shorelux/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 10 MB cap on bill and voucher scans.
const maxUploadSize = 10 << 20

var uploadFolders = map[string]string{
	"bill":    "shorelux/bills",
	"voucher": "shorelux/vouchers",
}

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// Upload pushes a bill or voucher scan to Cloudinary and returns the URL to
// store on the expense record. The :kind path param picks the folder.
func (h *UploadHandler) Upload(c *gin.Context) {
	folder, ok := uploadFolders[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload kind must be bill or voucher"})
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10MB limit"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	publicID := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	url, err := h.cloud.UploadFile(c.Request.Context(), file, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
