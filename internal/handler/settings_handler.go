package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"threadly/internal/domain"
	"threadly/internal/repository"
	"threadly/pkg/cloudinary"
)

type SettingsHandler struct {
	settingRepo *repository.SettingRepository
	cloud       cloudinary.Client
}

func NewSettingsHandler(settingRepo *repository.SettingRepository, cloud cloudinary.Client) *SettingsHandler {
	return &SettingsHandler{settingRepo: settingRepo, cloud: cloud}
}

// assetSlots maps each file input on the settings form to its column.
var assetSlots = []struct {
	Field  string
	Column string
}{
	{domain.AssetSlotLogo, "logo_url"},
	{domain.AssetSlotWhatsappQR, "whatsapp_qr_url"},
	{domain.AssetSlotInstagramQR, "instagram_qr_url"},
}

// assetResult is the outcome of one slot's upload. Slots are independent: a
// failed slot keeps its previous URL and never blocks the field update.
type assetResult struct {
	Slot   string
	Column string
	URL    string
	Err    error
}

// Get returns the settings row, creating the default one on first visit.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingRepo.GetOrCreate()
	if err != nil {
		log.Printf("settings load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles the multipart settings form: uploads any newly selected
// asset slots, then persists all fields in one update.
func (h *SettingsHandler) Update(c *gin.Context) {
	current, err := h.settingRepo.GetOrCreate()
	if err != nil {
		log.Printf("settings load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}
	if strings.TrimSpace(c.PostForm("store_name")) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_name is required"})
		return
	}

	payload := settingsPayload(c.PostForm)
	uploadErrors := applyAssetResults(payload, h.uploadAssets(c))

	if err := h.settingRepo.UpdateByID(current.ID, payload); err != nil {
		log.Printf("settings update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	fresh, err := h.settingRepo.First()
	if err != nil {
		log.Printf("settings reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload settings"})
		return
	}
	resp := gin.H{"settings": fresh}
	if len(uploadErrors) > 0 {
		resp["upload_errors"] = uploadErrors
	}
	c.JSON(http.StatusOK, resp)
}

// uploadAssets uploads each slot that carries a new file, sequentially, and
// returns one result per attempted slot.
func (h *SettingsHandler) uploadAssets(c *gin.Context) []assetResult {
	var results []assetResult
	for _, slot := range assetSlots {
		fh, err := c.FormFile(slot.Field)
		if err != nil {
			// no new file for this slot
			continue
		}
		f, err := fh.Open()
		if err != nil {
			results = append(results, assetResult{Slot: slot.Field, Column: slot.Column, Err: err})
			continue
		}
		publicID := fmt.Sprintf("%s-%d", slot.Field, time.Now().UnixMilli())
		url, err := h.cloud.UploadImage(c.Request.Context(), f, domain.StoreAssetsFolder, publicID)
		f.Close()
		results = append(results, assetResult{Slot: slot.Field, Column: slot.Column, URL: url, Err: err})
	}
	return results
}

// settingsPayload builds the update column set from form values. Numeric
// fields fall back on parse failure (tax to 0, threshold to 10); empty
// optional text clears the column, except the taglines which fall back to
// their defaults.
func settingsPayload(get func(string) string) map[string]interface{} {
	return map[string]interface{}{
		"store_name":            strings.TrimSpace(get("store_name")),
		"currency_symbol":       get("currency_symbol"),
		"email":                 nullable(get("email")),
		"phone":                 nullable(get("phone")),
		"address":               nullable(get("address")),
		"tax_percentage":        parseDecimal(get("tax_percentage"), 0),
		"low_stock_threshold":   parseInt(get("low_stock_threshold"), domain.DefaultLowStockThreshold),
		"whatsapp_channel_name": nullable(get("whatsapp_channel_name")),
		"instagram_page_id":     nullable(get("instagram_page_id")),
		"whatsapp_tagline":      orDefault(get("whatsapp_tagline"), domain.DefaultWhatsappTagline),
		"instagram_tagline":     orDefault(get("instagram_tagline"), domain.DefaultInstagramTagline),
	}
}

// applyAssetResults merges successful uploads into the payload and collects
// per-slot failures. Failed or absent slots leave their column untouched, so
// the previously stored URL survives.
func applyAssetResults(payload map[string]interface{}, results []assetResult) map[string]string {
	uploadErrors := make(map[string]string)
	for _, res := range results {
		if res.Err != nil {
			log.Printf("asset upload failed: slot=%s err=%v", res.Slot, res.Err)
			uploadErrors[res.Slot] = "upload failed"
			continue
		}
		payload[res.Column] = res.URL
	}
	return uploadErrors
}

func nullable(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseDecimal(v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return fallback
	}
	return f
}

func parseInt(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
