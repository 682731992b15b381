package uploadcontroller

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadDir returns the configured uploads root.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "/var/www/tamirstore/uploads"
}

// cleanFilename builds a unique, space-free filename keeping the original
// extension.
func cleanFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
}

// UploadImage saves a multipart image and answers with its public URL plus a
// thumbnail URL for jpeg/png sources.
// URL: POST /upload, field "image"
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		if file.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is larger than 10 MB"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
			return
		}

		saveDir := filepath.Join(UploadDir(), "images")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		filename := cleanFilename(file.Filename)
		savePath := filepath.Join(saveDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		resp := gin.H{"url": "/uploads/images/" + filename}
		if thumb, err := writeThumbnail(savePath, saveDir, filename); err == nil {
			resp["thumbnail"] = "/uploads/images/" + thumb
		}

		c.JSON(http.StatusOK, resp)
	}
}

// writeThumbnail renders a 300px-wide copy next to the original. Formats the
// decoder does not know are skipped.
func writeThumbnail(srcPath, dir, filename string) (string, error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return "", err
	}

	thumb := resize.Resize(300, 0, img, resize.Lanczos3)
	thumbName := "thumb_" + filename

	out, err := os.Create(filepath.Join(dir, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, thumb)
	default:
		err = jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", err
	}
	return thumbName, nil
}
