package uploadcontroller

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type searchImage struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
}

// SearchImages proxies the configured image search provider so the
// provider's API key never reaches the browser.
// URL: GET /search-images?q=
func SearchImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		endpoint := os.Getenv("IMAGE_SEARCH_URL")
		if endpoint == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image search is not configured"})
			return
		}

		reqURL := endpoint + "?q=" + url.QueryEscape(query)
		httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, reqURL, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build search request"})
			return
		}
		if key := os.Getenv("IMAGE_SEARCH_KEY"); key != "" {
			httpReq.Header.Set("Authorization", "Bearer "+key)
		}

		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Do(httpReq)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Image search failed"})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Image search provider error"})
			return
		}
		if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Unexpected response from image search provider"})
			return
		}

		var payload struct {
			Images []searchImage `json:"images"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse search results"})
			return
		}
		if payload.Images == nil {
			payload.Images = []searchImage{}
		}

		c.JSON(http.StatusOK, gin.H{"images": payload.Images})
	}
}
