// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// Bundle groups every handler plus the admin gate so route registration takes
// one argument.
type Bundle struct {
	Events       *CatalogHandler
	Articles     *CatalogHandler
	Members      *CatalogHandler
	Merchandise  *CatalogHandler
	PrivateTours *CatalogHandler
	Availability *AvailabilityHandler
	Coaching     *CoachingHandler
	Newsletter   *NewsletterHandler
	Payment      *PaymentHandler
	Admin        *AdminHandler

	AdminAuth gin.HandlerFunc
}
