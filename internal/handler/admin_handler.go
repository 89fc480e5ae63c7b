package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"threadly/internal/domain"
	"threadly/internal/middleware"
	"threadly/internal/models"
	"threadly/internal/repository"
	"threadly/pkg/cloudinary"
)

// AdminHandler owns the danger zone: the irreversible full data reset.
type AdminHandler struct {
	resetRepo   *repository.ResetRepository
	settingRepo *repository.SettingRepository
	sizeRepo    *repository.SizeRepository
	cloud       cloudinary.Client
}

func NewAdminHandler(resetRepo *repository.ResetRepository, settingRepo *repository.SettingRepository, sizeRepo *repository.SizeRepository, cloud cloudinary.Client) *AdminHandler {
	return &AdminHandler{
		resetRepo:   resetRepo,
		settingRepo: settingRepo,
		sizeRepo:    sizeRepo,
		cloud:       cloud,
	}
}

type resetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}

// ResetAllData wipes the data tables in a fixed order, purges both asset
// folders, then reseeds default settings and sizes. The steps run strictly in
// sequence with no transaction and no rollback; the first failure aborts the
// rest and may leave mixed state, which the settings load path repairs.
func (h *AdminHandler) ResetAllData(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Confirm != domain.ResetConfirmPhrase {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation phrase does not match"})
		return
	}

	log.Printf("full data reset requested by user %d", middleware.GetUserID(c))

	if err := h.resetRepo.WipeAll(); err != nil {
		log.Printf("reset failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	ctx := c.Request.Context()
	if err := h.purgeFolder(ctx, domain.ProductImagesFolder); err != nil {
		log.Printf("reset failed purging %s: %v", domain.ProductImagesFolder, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	if err := h.purgeFolder(ctx, domain.StoreAssetsFolder); err != nil {
		log.Printf("reset failed purging %s: %v", domain.StoreAssetsFolder, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}

	// Reseed. low_stock_threshold is left to the column default here, unlike
	// the load path's explicit default.
	if err := h.settingRepo.Create(&models.StoreSettings{
		StoreName:      domain.DefaultStoreName,
		CurrencySymbol: domain.DefaultCurrencySymbol,
		TaxPercentage:  domain.DefaultTaxPercentage,
	}); err != nil {
		log.Printf("reset failed reseeding settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	if err := h.sizeRepo.CreateDefaults(); err != nil {
		log.Printf("reset failed reseeding sizes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}

	log.Println("full data reset completed")
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"wiped_tables": repository.WipedTables(),
	})
}

// purgeFolder lists the folder and bulk-removes its assets; empty folders are
// skipped.
func (h *AdminHandler) purgeFolder(ctx context.Context, folder string) error {
	ids, err := h.cloud.ListFolder(ctx, folder)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return h.cloud.RemoveAssets(ctx, ids)
}
