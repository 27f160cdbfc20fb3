package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint the router registers.
type HandlerBundle struct {
	// Public page endpoints.
	HomePageHandler       gin.HandlerFunc
	AboutPageHandler      gin.HandlerFunc
	ProductsPageHandler   gin.HandlerFunc
	CareersPageHandler    gin.HandlerFunc
	TeamPageHandler       gin.HandlerFunc
	EcovillagePageHandler gin.HandlerFunc
	InvestorsPageHandler  gin.HandlerFunc
	ContactPageHandler    gin.HandlerFunc
	FooterHandler         gin.HandlerFunc

	// Contact form.
	SubmitMessageHandler gin.HandlerFunc

	// Admin inbox.
	AdminHandler *AdminHandler
}
