package routes

import (
	"quote_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathQuotes   = "/quotes"
	PathSettings = "/settings"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		// Static segments before :id.
		quotes.GET("/new", quoteHandler.NewQuote)
		quotes.POST("/totals", quoteHandler.ComputeTotals)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.DELETE("/:id/items/:item_id", quoteHandler.RemoveQuoteItem)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	rg.GET(PathSettings, settingsHandler.GetSettings)
	rg.PUT(PathSettings, settingsHandler.SaveSettings)
}
