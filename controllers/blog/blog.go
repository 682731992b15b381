package blogcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/models"
	"github.com/aksoydev/tamirstore-api/seo"
)

type BlogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Published bool   `json:"published"`
	MetaTitle string `json:"meta_title"`
	MetaDesc  string `json:"meta_description"`
	Keywords  string `json:"keywords"`
}

// applyDerivedFields fills the SEO fields the editor left empty and keeps
// the reading time in sync with the content.
func applyDerivedFields(post *models.BlogPost) {
	if post.Slug == "" {
		post.Slug = seo.Slugify(post.Title)
	}
	if post.MetaDesc == "" {
		post.MetaDesc = seo.MetaDescription(post.Content, post.Excerpt)
	}
	if post.Keywords == "" {
		post.Keywords = seo.Keywords(post.Title, post.Content)
	}
	post.ReadingTime = seo.ReadingTime(post.Content)
}

func CreateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		post := models.BlogPost{
			Title:     req.Title,
			Slug:      req.Slug,
			Content:   req.Content,
			Excerpt:   req.Excerpt,
			Published: req.Published,
			MetaTitle: req.MetaTitle,
			MetaDesc:  req.MetaDesc,
			Keywords:  req.Keywords,
		}
		applyDerivedFields(&post)
		if post.Slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A slug could not be derived from the title"})
			return
		}
		if post.Published {
			now := time.Now()
			post.PublishedAt = &now
		}

		if err := db.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

func GetAllBlogPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if c.Query("published") == "true" {
			query = query.Where("published = ?", true)
		}

		var posts []models.BlogPost
		if err := query.Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GetBlogPostByID accepts a numeric id or a slug. A slug queries the slug
// column alone; the text value never binds to the integer id column.
func GetBlogPostByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("id")

		var query *gorm.DB
		if _, err := strconv.Atoi(ref); err == nil {
			query = db.Where("id = ?", ref)
		} else {
			query = db.Where("slug = ?", ref)
		}

		var post models.BlogPost
		if err := query.First(&post).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func UpdateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var post models.BlogPost
		if err := db.First(&post, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}

		var req struct {
			Title     *string `json:"title"`
			Slug      *string `json:"slug"`
			Content   *string `json:"content"`
			Excerpt   *string `json:"excerpt"`
			Published *bool   `json:"published"`
			MetaTitle *string `json:"meta_title"`
			MetaDesc  *string `json:"meta_description"`
			Keywords  *string `json:"keywords"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Slug != nil {
			if *req.Slug == "" {
				post.Slug = seo.Slugify(post.Title)
			} else {
				post.Slug = seo.Slugify(*req.Slug)
			}
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if req.Excerpt != nil {
			post.Excerpt = *req.Excerpt
		}
		if req.MetaTitle != nil {
			post.MetaTitle = *req.MetaTitle
		}
		if req.MetaDesc != nil {
			post.MetaDesc = *req.MetaDesc
		}
		if req.Keywords != nil {
			post.Keywords = *req.Keywords
		}
		if req.Published != nil {
			if *req.Published && !post.Published {
				now := time.Now()
				post.PublishedAt = &now
			}
			post.Published = *req.Published
		}
		applyDerivedFields(&post)

		if err := db.Save(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func DeleteBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.BlogPost{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
	}
}
