package routes

import (
	"SaveNServe-Backend/internal/api/handlers"
	"SaveNServe-Backend/internal/middleware"
	"SaveNServe-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CatalogHandler  handlers.CatalogHandler
	CartHandler     handlers.CartHandler
	BannerHandler   handlers.BannerHandler
	LikeHandler     handlers.LikeHandler
	CheckoutHandler handlers.CheckoutHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Cart()
	c.Banners()
	c.Likes()
	c.Checkout()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Subscribe)
	}
}

func (c *Config) Catalog() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.AdminMiddleware()

	categories := c.App.Group("/api/v1/categories")
	categories.Get("", c.CatalogHandler.GetCategories)
	categories.Post("", auth, admin, c.CatalogHandler.AddCategory)
	categories.Put("/:id", auth, admin, c.CatalogHandler.UpdateCategory)
	categories.Delete("/:id", auth, admin, c.CatalogHandler.DeleteCategory)
	categories.Post("/subcategories", auth, admin, c.CatalogHandler.AddSubcategory)

	items := c.App.Group("/api/v1/items")
	items.Get("", c.CatalogHandler.GetItems)
	items.Get("/:id", c.CatalogHandler.GetItemDetails)
	items.Post("", auth, admin, c.CatalogHandler.AddItem)
	items.Put("/:id", auth, admin, c.CatalogHandler.UpdateItem)
	items.Delete("/:id", auth, admin, c.CatalogHandler.DeleteItem)
	items.Post("/image", auth, admin, c.CatalogHandler.UploadItemImage)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))
	cart.Get("", c.CartHandler.GetCart)
	cart.Post("", c.CartHandler.AddToCart)
	cart.Patch("/:id", c.CartHandler.UpdateCartItem)
	cart.Delete("/:id", c.CartHandler.RemoveCartItem)
	cart.Post("/:id/pickup", c.CartHandler.ConfirmPickup)
}

func (c *Config) Banners() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.AdminMiddleware()

	banners := c.App.Group("/api/v1/banners")
	banners.Get("", c.BannerHandler.GetBanners)
	banners.Get("/all", auth, admin, c.BannerHandler.GetAllBanners)
	banners.Post("", auth, admin, c.BannerHandler.AddBanner)
	banners.Patch("/:id", auth, admin, c.BannerHandler.UpdateBanner)
	banners.Delete("/:id", auth, admin, c.BannerHandler.DeleteBanner)
}

func (c *Config) Likes() {
	likes := c.App.Group("/api/v1/likes", c.Middleware.AuthMiddleware(c.JWTService))
	likes.Get("", c.LikeHandler.GetLikedItems)
	likes.Post("", c.LikeHandler.LikeItem)
	likes.Delete("/:item_id", c.LikeHandler.UnlikeItem)
}

func (c *Config) Checkout() {
	checkout := c.App.Group("/api/v1/checkout", c.Middleware.AuthMiddleware(c.JWTService))
	checkout.Post("", c.CheckoutHandler.Checkout)
	checkout.Get("/orders", c.CheckoutHandler.GetOrders)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.CheckoutHandler.MidtransWebhookHandler)
}
