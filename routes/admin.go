package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aksoydev/tamirstore-api/auth"
	blogcontroller "github.com/aksoydev/tamirstore-api/controllers/blog"
	campaigncontroller "github.com/aksoydev/tamirstore-api/controllers/campaign"
	categorycontroller "github.com/aksoydev/tamirstore-api/controllers/category"
	contentcontroller "github.com/aksoydev/tamirstore-api/controllers/content"
	ordercontroller "github.com/aksoydev/tamirstore-api/controllers/order"
	productcontroller "github.com/aksoydev/tamirstore-api/controllers/product"
	repaircontroller "github.com/aksoydev/tamirstore-api/controllers/repair"
	uploadcontroller "github.com/aksoydev/tamirstore-api/controllers/upload"
	"github.com/aksoydev/tamirstore-api/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Everything except
// login requires a bearer token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/admin/login", auth.AdminLoginHandler(db))

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken)
	{
		// ─────────── Products ───────────
		products := adminGroup.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.GET("/:id", productcontroller.GetProductByID(db))
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))

			products.POST("/:id/images", productcontroller.AddProductImages(db))
			products.DELETE("/:id/images/:imageId", productcontroller.DeleteProductImage(db))
			products.PUT("/:id/images/:imageId/set-primary", productcontroller.SetPrimaryImage(db))
		}

		// ─────────── Categories ───────────
		categories := adminGroup.Group("/categories")
		{
			categories.GET("", categorycontroller.GetAllCategories(db))
			categories.GET("/parent/:id", categorycontroller.GetCategoryChildren(db))
			categories.POST("", categorycontroller.CreateCategory(db))
			categories.PUT("/:id", categorycontroller.UpdateCategory(db))
			categories.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}

		// ─────────── Campaigns ───────────
		campaigns := adminGroup.Group("/campaigns")
		{
			campaigns.GET("", campaigncontroller.GetAllCampaigns(db))
			campaigns.GET("/:id", campaigncontroller.GetCampaignByID(db))
			campaigns.POST("", campaigncontroller.CreateCampaign(db))
			campaigns.PUT("/:id", campaigncontroller.UpdateCampaign(db))
			campaigns.DELETE("/:id", campaigncontroller.DeleteCampaign(db))

			campaigns.GET("/:id/products", campaigncontroller.GetCampaignProducts(db))
			campaigns.POST("/:id/products", campaigncontroller.AddCampaignProduct(db))
			campaigns.DELETE("/:id/products/:productId", campaigncontroller.RemoveCampaignProduct(db))
			campaigns.PUT("/:id/products/:productId/order", campaigncontroller.UpdateCampaignProductOrder(db))
			campaigns.PUT("/:id/products/swap-order", campaigncontroller.SwapCampaignProductOrder(db))
		}

		// ─────────── Orders ───────────
		orders := adminGroup.Group("/orders")
		{
			orders.GET("", ordercontroller.GetAllOrdersHandler(db))
			orders.GET("/export-excel", ordercontroller.ExportOrdersToExcel(db))
			orders.GET("/:orderID", ordercontroller.GetOrderByIDHandler(db))
			orders.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
			orders.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(db))
		}

		// websocket endpoint for real-time order and repair events
		adminGroup.GET("/ws/events", ordercontroller.EventsWebSocketHandler)

		// ─────────── Repair Tickets ───────────
		repairs := adminGroup.Group("/repair-requests")
		{
			repairs.GET("", repaircontroller.GetAllRepairRequests(db))
			repairs.GET("/:id", repaircontroller.GetRepairRequestByID(db))
			repairs.POST("", repaircontroller.CreateRepairRequest(db))
			repairs.PUT("/:id", repaircontroller.UpdateRepairRequest(db))
			repairs.DELETE("/:id", repaircontroller.DeleteRepairRequest(db))

			repairs.POST("/:id/quote-price", repaircontroller.QuoteRepairPrice(db))
			repairs.PUT("/:id/update-status", repaircontroller.UpdateRepairStatus(db))
			repairs.POST("/:id/images", repaircontroller.AddRepairImages(db))
		}

		repairServices := adminGroup.Group("/repair-services")
		{
			repairServices.GET("", repaircontroller.GetRepairServices(db))
			repairServices.POST("", repaircontroller.CreateRepairService(db))
			repairServices.PUT("/:id", repaircontroller.UpdateRepairService(db))
			repairServices.DELETE("/:id", repaircontroller.DeleteRepairService(db))
		}

		// ─────────── Customers (read-only aggregate) ───────────
		adminGroup.GET("/customers", repaircontroller.GetCustomers(db))
		adminGroup.GET("/customers/:phone", repaircontroller.GetCustomerByPhone(db))

		// ─────────── Blog ───────────
		blog := adminGroup.Group("/blog")
		{
			blog.GET("", blogcontroller.GetAllBlogPosts(db))
			blog.GET("/:id", blogcontroller.GetBlogPostByID(db))
			blog.POST("", blogcontroller.CreateBlogPost(db))
			blog.PUT("/:id", blogcontroller.UpdateBlogPost(db))
			blog.DELETE("/:id", blogcontroller.DeleteBlogPost(db))
		}

		// ─────────── Content & Settings ───────────
		reviews := adminGroup.Group("/reviews")
		{
			reviews.GET("", contentcontroller.GetAllReviews(db))
			reviews.PUT("/:id/approve", contentcontroller.ApproveReview(db))
			reviews.DELETE("/:id", contentcontroller.DeleteReview(db))
		}

		faqs := adminGroup.Group("/faqs")
		{
			faqs.GET("", contentcontroller.GetFAQs(db))
			faqs.POST("", contentcontroller.CreateFAQ(db))
			faqs.PUT("/:id", contentcontroller.UpdateFAQ(db))
			faqs.DELETE("/:id", contentcontroller.DeleteFAQ(db))
		}

		newsletter := adminGroup.Group("/newsletter")
		{
			newsletter.GET("", contentcontroller.GetNewsletterSubscriptions(db))
			newsletter.DELETE("/:id", contentcontroller.DeleteNewsletterSubscription(db))
		}

		slides := adminGroup.Group("/slides")
		{
			slides.GET("", contentcontroller.GetSlides(db))
			slides.POST("", contentcontroller.CreateSlide(db))
			slides.PUT("/:id", contentcontroller.UpdateSlide(db))
			slides.DELETE("/:id", contentcontroller.DeleteSlide(db))
		}

		contactMessages := adminGroup.Group("/contact-messages")
		{
			contactMessages.GET("", contentcontroller.GetContactMessages(db))
			contactMessages.PUT("/:id/read", contentcontroller.MarkContactMessageRead(db))
			contactMessages.DELETE("/:id", contentcontroller.DeleteContactMessage(db))
		}

		shippingRegions := adminGroup.Group("/shipping-regions")
		{
			shippingRegions.GET("", contentcontroller.GetShippingRegions(db))
			shippingRegions.POST("", contentcontroller.CreateShippingRegion(db))
			shippingRegions.PUT("/:id", contentcontroller.UpdateShippingRegion(db))
			shippingRegions.DELETE("/:id", contentcontroller.DeleteShippingRegion(db))
		}

		internetPackages := adminGroup.Group("/internet-packages")
		{
			internetPackages.GET("", contentcontroller.GetInternetPackages(db))
			internetPackages.POST("", contentcontroller.CreateInternetPackage(db))
			internetPackages.PUT("/:id", contentcontroller.UpdateInternetPackage(db))
			internetPackages.DELETE("/:id", contentcontroller.DeleteInternetPackage(db))
		}

		settings := adminGroup.Group("/settings")
		{
			settings.GET("", contentcontroller.GetSettings(db))
			settings.GET("/:key", contentcontroller.GetSettingByKey(db))
			settings.PUT("/:key", contentcontroller.UpsertSettingByKey(db))
			settings.DELETE("/:key", contentcontroller.DeleteSetting(db))
		}

		// ─────────── Uploads ───────────
		adminGroup.POST("/upload", uploadcontroller.UploadImage())
		adminGroup.POST("/download-image", uploadcontroller.DownloadImage())
		adminGroup.GET("/search-images", uploadcontroller.SearchImages())
	}
}
