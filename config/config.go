package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config groups server settings and every heuristic threshold used by the
// extraction pipeline. The thresholds were tuned against the known source
// layouts (R3R, Alphaville, Mauá, Barueri) and can be overridden per
// deployment without a rebuild.
type Config struct {
	ServerPort  string
	AccessKey   string
	MaxFileSize int64

	// Token classification.
	MoneyFloor     float64 // amounts at or below this are noise (fees, page numbers)
	MileageCeiling int     // sanity ceiling for classified mileage cells

	// Field extraction.
	CostFloor            float64 // minimum plausible acquisition cost
	LooseMileageCeiling  int     // ceiling for the unlabeled-number fallback
	TaxBandLow           float64 // third monetary value must fall inside this band
	TaxBandHigh          float64
	MarginEchoTolerance  float64 // closer than this to fipe-cost means a restated margin
	MinTableYield        int     // below this, the text strategy also runs
	DefaultFixedMargin   float64
	DefaultPercentMargin float64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	return &Config{
		ServerPort:  envString("SERVER_PORT", "8080"),
		AccessKey:   os.Getenv("FIPEHUNTER_ACCESS_KEY"),
		MaxFileSize: 32 << 20,

		MoneyFloor:     envFloat("FIPEHUNTER_MONEY_FLOOR", 2000),
		MileageCeiling: envInt("FIPEHUNTER_KM_CEILING", 400000),

		CostFloor:            envFloat("FIPEHUNTER_COST_FLOOR", 5000),
		LooseMileageCeiling:  envInt("FIPEHUNTER_LOOSE_KM_CEILING", 300000),
		TaxBandLow:           envFloat("FIPEHUNTER_TAX_BAND_LOW", 1000),
		TaxBandHigh:          envFloat("FIPEHUNTER_TAX_BAND_HIGH", 15000),
		MarginEchoTolerance:  envFloat("FIPEHUNTER_MARGIN_ECHO_TOLERANCE", 100),
		MinTableYield:        envInt("FIPEHUNTER_MIN_TABLE_YIELD", 3),
		DefaultFixedMargin:   envFloat("FIPEHUNTER_DEFAULT_FIXED_MARGIN", 2000),
		DefaultPercentMargin: envFloat("FIPEHUNTER_DEFAULT_PERCENT_MARGIN", 5),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using default %g", key, v, fallback)
	}
	return fallback
}
