package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
	Realtor struct {
		URLs       map[string]string `yaml:"urls"` // keyed by granularity
		Timeout    time.Duration     `yaml:"timeout"`
		ZipTimeout time.Duration     `yaml:"zip_timeout"`
		ChunkSize  int               `yaml:"chunk_size"`
	} `yaml:"realtor"`
	Zillow struct {
		SalePriceURLs     map[string]string `yaml:"sale_price_urls"`    // allHomes, sfrOnly
		AffordabilityURLs map[string]string `yaml:"affordability_urls"` // keyed by metric type
		Timeout           time.Duration     `yaml:"timeout"`
	} `yaml:"zillow"`
	Analytics struct {
		BaselineStart    int     `yaml:"baseline_start"`     // YYYYMM
		BaselineEnd      int     `yaml:"baseline_end"`       // YYYYMM
		MinHistoryPoints int     `yaml:"min_history_points"` // valid baseline samples per metric
		SampleFloor      float64 `yaml:"sample_floor"`       // minimum count for percent-change math
		RankSize         int     `yaml:"rank_size"`
		TrendWindow      int     `yaml:"trend_window"`
	} `yaml:"analytics"`
}

// Upstream defaults. The providers publish these as stable public files, so
// they double as config fallbacks when the YAML leaves the maps empty.
var defaultRealtorURLs = map[string]string{
	"national": "https://econdata.s3-us-west-2.amazonaws.com/Reports/Core/RDC_Inventory_Core_Metrics_Country_History.csv",
	"state":    "https://econdata.s3-us-west-2.amazonaws.com/Reports/Core/RDC_Inventory_Core_Metrics_State_History.csv",
	"metro":    "https://econdata.s3-us-west-2.amazonaws.com/Reports/Core/RDC_Inventory_Core_Metrics_Metro_History.csv",
	"county":   "https://econdata.s3-us-west-2.amazonaws.com/Reports/Core/RDC_Inventory_Core_Metrics_County_History.csv",
	"zip":      "https://econdata.s3-us-west-2.amazonaws.com/Reports/Core/RDC_Inventory_Core_Metrics_Zip_History.csv",
}

var defaultSalePriceURLs = map[string]string{
	"allHomes": "https://files.zillowstatic.com/research/public_csvs/median_sale_price/Metro_median_sale_price_uc_sfrcondo_sm_month.csv",
	"sfrOnly":  "https://files.zillowstatic.com/research/public_csvs/median_sale_price/Metro_median_sale_price_uc_sfr_sm_month.csv",
}

var defaultAffordabilityURLs = map[string]string{
	"homeowner":        "https://files.zillowstatic.com/research/public_csvs/new_homeowner_affordability/Metro_new_homeowner_affordability_downpayment_0.20_uc_sfrcondo_tier_0.33_0.67_sm_sa_month.csv",
	"renter":           "https://files.zillowstatic.com/research/public_csvs/new_renter_affordability/Metro_new_renter_affordability_uc_sfrcondomfr_sm_sa_month.csv",
	"total_payment":    "https://files.zillowstatic.com/research/public_csvs/total_monthly_payment/Metro_total_monthly_payment_downpayment_0.20_uc_sfrcondo_tier_0.33_0.67_sm_sa_month.csv",
	"mortgage_payment": "https://files.zillowstatic.com/research/public_csvs/mortgage_payment/Metro_mortgage_payment_downpayment_0.20_uc_sfrcondo_tier_0.33_0.67_sm_sa_month.csv",
	"affordable_price": "https://files.zillowstatic.com/research/public_csvs/affordable_price/Metro_affordable_price_downpayment_0.20_uc_sfrcondo_tier_0.33_0.67_sm_sa_month.csv",
	"median_price":     "https://files.zillowstatic.com/research/public_csvs/median_sale_price/Metro_median_sale_price_uc_sfrcondo_sm_sa_month.csv",
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		// Endpoints recompute everything from remote CSVs, so responses can
		// take tens of seconds on the large granularities.
		c.Server.WriteTimeout = 120 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if len(c.Realtor.URLs) == 0 {
		c.Realtor.URLs = defaultRealtorURLs
	}
	if c.Realtor.Timeout == 0 {
		c.Realtor.Timeout = 30 * time.Second
	}
	if c.Realtor.ZipTimeout == 0 {
		c.Realtor.ZipTimeout = 60 * time.Second
	}
	if c.Realtor.ChunkSize == 0 {
		c.Realtor.ChunkSize = 10000
	}
	if len(c.Zillow.SalePriceURLs) == 0 {
		c.Zillow.SalePriceURLs = defaultSalePriceURLs
	}
	if len(c.Zillow.AffordabilityURLs) == 0 {
		c.Zillow.AffordabilityURLs = defaultAffordabilityURLs
	}
	if c.Zillow.Timeout == 0 {
		c.Zillow.Timeout = 30 * time.Second
	}
	if c.Analytics.BaselineStart == 0 {
		c.Analytics.BaselineStart = 201601
	}
	if c.Analytics.BaselineEnd == 0 {
		c.Analytics.BaselineEnd = 201912
	}
	if c.Analytics.MinHistoryPoints == 0 {
		c.Analytics.MinHistoryPoints = 3
	}
	if c.Analytics.SampleFloor == 0 {
		c.Analytics.SampleFloor = 30
	}
	if c.Analytics.RankSize == 0 {
		c.Analytics.RankSize = 10
	}
	if c.Analytics.TrendWindow == 0 {
		c.Analytics.TrendWindow = 6
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	for _, g := range []string{"national", "state", "metro", "county", "zip"} {
		if c.Realtor.URLs[g] == "" {
			return fmt.Errorf("realtor.urls.%s is required", g)
		}
	}
	for _, k := range []string{"allHomes", "sfrOnly"} {
		if c.Zillow.SalePriceURLs[k] == "" {
			return fmt.Errorf("zillow.sale_price_urls.%s is required", k)
		}
	}
	for _, k := range []string{"homeowner", "renter", "total_payment", "mortgage_payment", "affordable_price", "median_price"} {
		if c.Zillow.AffordabilityURLs[k] == "" {
			return fmt.Errorf("zillow.affordability_urls.%s is required", k)
		}
	}
	if c.Analytics.BaselineStart > c.Analytics.BaselineEnd {
		return fmt.Errorf("analytics.baseline_start must not exceed baseline_end")
	}
	return nil
}
