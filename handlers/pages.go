package handlers

import (
	"net/http"

	contentRepo "verdanta/database/repository/content"
	"verdanta/models"
	"verdanta/services/content"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the public page endpoints. Each endpoint loads its
// sources independently; a failed source renders as its empty default
// while the rest of the page still loads.
type PageHandler struct {
	Repo contentRepo.Repository
}

func NewPageHandler(repo contentRepo.Repository) *PageHandler {
	return &PageHandler{Repo: repo}
}

// sectionSlot picks the record for a fixed page slot, or nil when no
// predicate matches.
func sectionSlot(sections []models.SectionView, preds ...content.Predicate[models.SectionView]) *models.SectionView {
	s, ok := content.FirstMatch(sections, preds...)
	if !ok {
		return nil
	}
	return &s
}

// HomePageHandler returns the hero, featured products and latest
// eco-tourism photos.
func (h *PageHandler) HomePageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"hero":     h.heroLoader(models.SlugHome).Load(ctx),
		"products": h.productsLoader().Load(ctx),
		"photos":   h.ecoPhotosLoader().Load(ctx),
	})
}

// AboutPageHandler returns the hero, the mission/vision/values slots, the
// full section list and the team.
func (h *PageHandler) AboutPageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sections := h.sectionsLoader(models.SlugAbout).Load(ctx)

	c.JSON(http.StatusOK, gin.H{
		"hero":     h.heroLoader(models.SlugAbout).Load(ctx),
		"sections": sections,
		"mission":  sectionSlot(sections.Data, content.TitleContains("mission"), content.OrderEquals(1)),
		"vision":   sectionSlot(sections.Data, content.TitleContains("vision"), content.OrderEquals(2)),
		"values":   sectionSlot(sections.Data, content.TitleContains("value"), content.OrderEquals(3)),
		"team":     h.teamLoader().Load(ctx),
	})
}

func (h *PageHandler) ProductsPageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"hero":     h.heroLoader(models.SlugProducts).Load(ctx),
		"products": h.productsLoader().Load(ctx),
	})
}

func (h *PageHandler) CareersPageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"hero":        h.heroLoader(models.SlugCareers).Load(ctx),
		"careers":     h.careersLoader().Load(ctx),
		"internships": h.internshipsLoader().Load(ctx),
	})
}

func (h *PageHandler) TeamPageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"team": h.teamLoader().Load(c.Request.Context()),
	})
}

func (h *PageHandler) EcovillagePageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"hero":   h.heroLoader(models.SlugEcovillage).Load(ctx),
		"photos": h.ecoPhotosLoader().Load(ctx),
	})
}

func (h *PageHandler) InvestorsPageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"hero":    h.heroLoader(models.SlugInvestors).Load(ctx),
		"reports": h.reportsLoader().Load(ctx),
	})
}

func (h *PageHandler) ContactPageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"hero":     h.heroLoader(models.SlugContact).Load(ctx),
		"settings": h.contactSettingsLoader().Load(ctx),
	})
}

func (h *PageHandler) FooterHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"footer": h.footerLoader().Load(c.Request.Context()),
	})
}
