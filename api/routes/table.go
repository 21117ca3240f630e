package routes

import (
	"net/http"

	"github.com/angelmondragon/gash-demo/api/controllers"
	"github.com/angelmondragon/gash-demo/internal/demo"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

// Route is one mocked endpoint. Patterns use chi syntax; static segments win over
// {params}, which win over a trailing /* catch-all, so table order does not matter.
type Route struct {
	Method  string
	Pattern string
	Name    string
	Handler http.HandlerFunc
}

// Table lists every endpoint the demo backend answers.
func Table(env *demo.Environment, logg *logger.Logger) []Route {
	ack := controllers.Ack
	return []Route{
		// auth
		{http.MethodGet, "/auth/check-status", "auth.check_status", controllers.AuthCheckStatus(env.Auth)},
		{http.MethodPost, "/auth/login", "auth.login", controllers.AuthLogin(env.Auth, logg)},
		{http.MethodPost, "/auth/logout", "auth.logout", controllers.AuthLogout(env.Auth, logg)},

		// accounts
		{http.MethodGet, "/accounts", "accounts.list", controllers.ListAccounts(env.Accounts)},
		{http.MethodGet, "/accounts/search", "accounts.search", controllers.SearchAccounts(env.Accounts)},
		{http.MethodGet, "/accounts/{id}", "accounts.get", controllers.GetAccount(env.Accounts, logg)},

		// categories
		{http.MethodGet, "/categories/get-all-categories", "categories.list", controllers.ListCategories(env.Catalog)},
		{http.MethodGet, "/categories/get-category-detail/{id}", "categories.get", controllers.GetCategory(env.Catalog, logg)},
		{http.MethodGet, "/categories/search-categories", "categories.search", controllers.SearchCategories(env.Catalog)},
		{http.MethodPost, "/categories/create-category", "categories.create", ack("Category created successfully (Demo)")},
		{http.MethodPut, "/categories/update-category/*", "categories.update", ack("Category updated successfully (Demo)")},
		{http.MethodDelete, "/categories/delete-category/*", "categories.delete", ack("Category deleted successfully (Demo)")},

		// specifications
		{http.MethodGet, "/specifications/get-all-colors", "colors.list", controllers.ListColors(env.Catalog)},
		{http.MethodGet, "/specifications/get-color-detail/{id}", "colors.get", controllers.GetColor(env.Catalog, logg)},
		{http.MethodGet, "/specifications/get-all-sizes", "sizes.list", controllers.ListSizes(env.Catalog)},
		{http.MethodGet, "/specifications/get-size-detail/{id}", "sizes.get", controllers.GetSize(env.Catalog, logg)},
		{http.MethodGet, "/specifications/search-specifications", "specifications.search", controllers.SearchSpecifications(env.Catalog)},
		{http.MethodPost, "/specifications/create-color", "colors.create", ack("Specification created successfully (Demo)")},
		{http.MethodPost, "/specifications/create-size", "sizes.create", ack("Specification created successfully (Demo)")},
		{http.MethodPut, "/specifications/update-color/*", "colors.update", ack("Specification updated successfully (Demo)")},
		{http.MethodPut, "/specifications/update-size/*", "sizes.update", ack("Specification updated successfully (Demo)")},
		{http.MethodDelete, "/specifications/delete-color/*", "colors.delete", ack("Specification deleted successfully (Demo)")},
		{http.MethodDelete, "/specifications/delete-size/*", "sizes.delete", ack("Specification deleted successfully (Demo)")},

		// vouchers
		{http.MethodGet, "/vouchers/get-all-vouchers", "vouchers.list", controllers.ListVouchers(env.Catalog)},
		{http.MethodGet, "/vouchers/{id}", "vouchers.get", controllers.GetVoucher(env.Catalog, logg)},
		{http.MethodPost, "/vouchers/create-voucher", "vouchers.create", ack("Voucher created successfully (Demo)")},
		{http.MethodPut, "/vouchers/update-voucher/*", "vouchers.update", ack("Voucher updated successfully (Demo)")},
		{http.MethodDelete, "/vouchers/disable-voucher/*", "vouchers.disable", ack("Voucher disabled successfully (Demo)")},

		// feedback
		{http.MethodGet, "/feedback/get-all-feedbacks", "feedback.list", controllers.ListFeedbacks(env.Catalog)},
		{http.MethodGet, "/feedback/get-feedback-by-id/{id}", "feedback.get", controllers.GetFeedback(env.Catalog, logg)},
		{http.MethodDelete, "/feedback/delete-feedback/*", "feedback.delete", ack("Feedback deleted successfully (Demo)")},
		{http.MethodGet, "/order-details/product/{id}", "feedback.by_product", controllers.ProductFeedback(env.Catalog)},

		// products
		{http.MethodGet, "/new-products", "products.list", controllers.ListProducts(env.Products)},
		{http.MethodGet, "/new-products/search", "products.search", controllers.SearchProducts(env.Products)},
		{http.MethodGet, "/new-products/{id}", "products.get", controllers.GetProduct(env.Products, logg)},
		{http.MethodPost, "/new-products", "products.create", ack("Product created successfully (Demo)")},
		{http.MethodPut, "/new-products/*", "products.update", ack("Product updated successfully (Demo)")},
		{http.MethodDelete, "/new-products/*", "products.delete", ack("Product deleted successfully (Demo)")},
		{http.MethodPost, "/new-products/{id}/images", "products.images.add", ack("Image added successfully (Demo)")},
		{http.MethodDelete, "/new-products/{id}/images/{imageId}", "products.images.delete", ack("Image deleted successfully (Demo)")},

		// variants
		{http.MethodGet, "/new-variants/get-all-variants", "variants.list", controllers.ListVariants(env.Products)},
		{http.MethodGet, "/new-variants/get-variant-detail/{id}", "variants.get", controllers.GetVariant(env.Products, logg)},
		{http.MethodPost, "/new-variants/create-variant", "variants.create", ack("Variant created successfully (Demo)")},
		{http.MethodPost, "/new-variants/bulk-create-variants", "variants.bulk_create", ack("Bulk variants created successfully (Demo)")},
		{http.MethodPut, "/new-variants/update-variant/*", "variants.update", ack("Variant updated successfully (Demo)")},
		{http.MethodDelete, "/new-variants/delete-variant/*", "variants.delete", ack("Variant deleted successfully (Demo)")},

		// uploads
		{http.MethodPost, "/upload", "upload.single", controllers.Upload()},
		{http.MethodPost, "/upload/multiple", "upload.multiple", controllers.Upload()},

		// orders
		{http.MethodGet, "/orders/admin/get-all-order", "orders.list", controllers.ListOrders(env.Orders, logg)},
		{http.MethodGet, "/orders/search", "orders.search", controllers.SearchOrders(env.Orders, logg)},
		{http.MethodGet, "/orders/get-order-by-id/{id}", "orders.get", controllers.GetOrder(env.Orders, logg)},
		{http.MethodPut, "/orders/update-order-status/{id}", "orders.update_status", controllers.UpdateOrderStatus(env.Orders, logg)},
		{http.MethodGet, "/order-details/search", "order_details.search", controllers.SearchOrderDetails(env.Orders)},

		// statistics
		{http.MethodGet, "/new-statistics/order-statistics", "statistics.orders", controllers.OrderStatistics(env.Analytics, logg)},
		{http.MethodGet, "/statistics/revenue/revenue-by-day", "statistics.revenue_day", controllers.RevenueByDay(env.Analytics)},
		{http.MethodGet, "/statistics/revenue/revenue-by-week", "statistics.revenue_week", controllers.RevenueByWeek(env.Analytics)},
		{http.MethodGet, "/statistics/revenue/revenue-by-month", "statistics.revenue_month", controllers.RevenueByMonth(env.Analytics)},
		{http.MethodGet, "/statistics/revenue/revenue-by-year", "statistics.revenue_year", controllers.RevenueByYear(env.Analytics)},

		// cart
		{http.MethodGet, "/cart", "cart.list", controllers.GetCart(env.Cart, logg)},
		{http.MethodPost, "/cart", "cart.add", controllers.AddCartItem(env.Cart, logg)},
		{http.MethodDelete, "/cart", "cart.clear", controllers.ClearCart(env.Cart, logg)},
		{http.MethodPut, "/cart/{variantId}", "cart.update", controllers.UpdateCartItem(env.Cart, logg)},
		{http.MethodDelete, "/cart/{variantId}", "cart.remove", controllers.RemoveCartItem(env.Cart, logg)},

		// favorites
		{http.MethodGet, "/favorites", "favorites.list", controllers.ListFavorites(env.Favorites, logg)},
		{http.MethodPost, "/favorites", "favorites.add", controllers.AddFavorite(env.Favorites, logg)},
		{http.MethodDelete, "/favorites/{productId}", "favorites.remove", controllers.RemoveFavorite(env.Favorites, logg)},

		// notifications
		{http.MethodGet, "/notifications/admin/all", "notifications.list", controllers.ListNotifications(env.Notifications, logg)},
		{http.MethodPost, "/notifications/admin/create", "notifications.create", controllers.CreateNotification(env.Notifications, logg)},
		{http.MethodDelete, "/notifications/admin/{id}", "notifications.delete", controllers.DeleteNotification(env.Notifications, logg)},
		{http.MethodGet, "/notifications/admin/templates", "templates.list", controllers.ListNotificationTemplates(env.Notifications, logg)},
		{http.MethodPost, "/notifications/admin/templates", "templates.create", controllers.CreateNotificationTemplate(env.Notifications, logg)},
		{http.MethodPatch, "/notifications/admin/templates/{id}", "templates.update", controllers.UpdateNotificationTemplate(env.Notifications, logg)},
		{http.MethodDelete, "/notifications/admin/templates/{id}", "templates.delete", controllers.DeleteNotificationTemplate(env.Notifications, logg)},
	}
}
