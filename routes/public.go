package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	blogcontroller "github.com/aksoydev/tamirstore-api/controllers/blog"
	categorycontroller "github.com/aksoydev/tamirstore-api/controllers/category"
	contentcontroller "github.com/aksoydev/tamirstore-api/controllers/content"
	ordercontroller "github.com/aksoydev/tamirstore-api/controllers/order"
	productcontroller "github.com/aksoydev/tamirstore-api/controllers/product"
	repaircontroller "github.com/aksoydev/tamirstore-api/controllers/repair"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.GET("/:id", productcontroller.GetProductByID(db))
			products.GET("/:id/images", productcontroller.ListProductImages(db))
			products.GET("/:id/reviews", contentcontroller.GetProductReviews(db))
			products.POST("/:id/reviews", contentcontroller.CreateProductReview(db))
		}

		api.GET("/categories", categorycontroller.GetAllCategories(db))
		api.GET("/categories/parent/:id", categorycontroller.GetCategoryChildren(db))

		blog := api.Group("/blog")
		{
			blog.GET("", blogcontroller.GetAllBlogPosts(db))
			blog.GET("/:id", blogcontroller.GetBlogPostByID(db))
		}

		api.GET("/slides", contentcontroller.GetSlides(db))
		api.GET("/faqs", contentcontroller.GetFAQs(db))
		api.GET("/internet-packages", contentcontroller.GetInternetPackages(db))
		api.GET("/shipping-regions", contentcontroller.GetShippingRegions(db))

		api.POST("/orders", ordercontroller.PlaceOrderHandler(db))
		api.GET("/orders/:orderID", ordercontroller.GetOrderByIDHandler(db))

		api.POST("/repair-requests", repaircontroller.CreateRepairRequest(db))
		api.GET("/repair-requests/:id", repaircontroller.GetRepairRequestByID(db))
		api.GET("/repair-services", repaircontroller.GetRepairServices(db))

		api.POST("/newsletter", contentcontroller.SubscribeNewsletter(db))
		api.POST("/contact", contentcontroller.CreateContactMessage(db))
	}
}
