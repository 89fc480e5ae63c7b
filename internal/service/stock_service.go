package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"threadly/config"
	"threadly/internal/models"
	"threadly/internal/repository"
)

// StockService runs the daily low-stock scan and sends a WhatsApp summary to
// the store phone when Twilio is configured.
type StockService struct {
	cfg         config.TwilioConfig
	productRepo *repository.ProductRepository
	settingRepo *repository.SettingRepository
	client      *twilio.RestClient
}

func NewStockService(cfg config.TwilioConfig, productRepo *repository.ProductRepository, settingRepo *repository.SettingRepository) *StockService {
	s := &StockService{
		cfg:         cfg,
		productRepo: productRepo,
		settingRepo: settingRepo,
	}
	if cfg.Enabled() {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return s
}

// StartScheduler scans every day at 09:00.
func (s *StockService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 9 * * *", s.RunScan)
	if err != nil {
		log.Printf("stock scheduler: %v", err)
		return
	}
	c.Start()
	log.Println("low-stock scheduler started")
}

// LowStock returns the products at or under the configured threshold,
// together with the threshold used.
func (s *StockService) LowStock() ([]models.Product, int, error) {
	settings, err := s.settingRepo.GetOrCreate()
	if err != nil {
		return nil, 0, err
	}
	products, err := s.productRepo.ListBelowStock(settings.LowStockThreshold)
	if err != nil {
		return nil, 0, err
	}
	return products, settings.LowStockThreshold, nil
}

// RunScan logs the current low-stock set and fires the WhatsApp alert.
func (s *StockService) RunScan() {
	products, threshold, err := s.LowStock()
	if err != nil {
		log.Printf("low-stock scan failed: %v", err)
		return
	}
	log.Printf("low-stock scan: %d product(s) at or under %d", len(products), threshold)
	if len(products) == 0 {
		return
	}
	s.notify(products, threshold)
}

func (s *StockService) notify(products []models.Product, threshold int) {
	if s.client == nil {
		return
	}
	settings, err := s.settingRepo.First()
	if err != nil || settings.Phone == nil || *settings.Phone == "" {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d product(s) at or below stock %d:\n", settings.StoreName, len(products), threshold)
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%d left)\n", p.Name, p.StockQuantity)
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.cfg.FromNumber)
	params.SetTo("whatsapp:" + *settings.Phone)
	params.SetBody(b.String())
	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("low-stock whatsapp alert failed: %v", err)
	}
}
