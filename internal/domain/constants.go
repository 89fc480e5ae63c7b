package domain

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Store settings defaults, applied when the singleton row is first created.
const (
	DefaultStoreName         = "My Garment Store"
	DefaultCurrencySymbol    = "₹"
	DefaultTaxPercentage     = 18
	DefaultLowStockThreshold = 10
	DefaultWhatsappTagline   = "Join our WhatsApp group"
	DefaultInstagramTagline  = "Follow us on Instagram"
)

// Storage folders (stand-ins for the two asset buckets).
const (
	StoreAssetsFolder   = "store-assets"
	ProductImagesFolder = "product-images"
)

// Asset slots on the settings screen.
const (
	AssetSlotLogo        = "logo"
	AssetSlotWhatsappQR  = "whatsapp_qr"
	AssetSlotInstagramQR = "instagram_qr"
)

// ResetConfirmPhrase must be sent verbatim with a full data reset request.
const ResetConfirmPhrase = "ERASE ALL DATA"

// DefaultSizeNames in display order; sort_order is the 1-based index.
var DefaultSizeNames = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}
