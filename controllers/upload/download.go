package uploadcontroller

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// DownloadImage fetches a remote image server-side and stores it under the
// uploads root, so the dashboard can import results from the image search
// without re-uploading them.
// URL: POST /download-image, body {"url": "..."}
func DownloadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			URL string `json:"url" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		parsed, err := url.Parse(req.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image URL"})
			return
		}

		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(req.URL)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch image"})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Remote server returned %d", resp.StatusCode)})
			return
		}

		contentType := resp.Header.Get("Content-Type")
		ext := extensionForContentType(contentType)
		if ext == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Remote file is not an image"})
			return
		}

		saveDir := filepath.Join(UploadDir(), "images")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		filename := fmt.Sprintf("%d_downloaded%s", time.Now().UnixNano(), ext)
		out, err := os.Create(filepath.Join(saveDir, filename))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		defer out.Close()

		if _, err := io.Copy(out, io.LimitReader(resp.Body, maxUploadSize)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": "/uploads/images/" + filename})
	}
}

func extensionForContentType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg"
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/gif"):
		return ".gif"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	default:
		return ""
	}
}
