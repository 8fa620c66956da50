package configs

// Quota holds the global daily quota and its utilisation feedback.
type Quota struct {
	BaseDaily       int     `env:"BASE_DAILY" envDefault:"1000"`
	PerCampaignCap  float64 `env:"PER_CAMPAIGN_CAP" envDefault:"0.4"`
	WindowDays      int     `env:"WINDOW_DAYS" envDefault:"7"`
	LowUtilization  float64 `env:"LOW_UTILIZATION" envDefault:"0.70"`
	HighUtilization float64 `env:"HIGH_UTILIZATION" envDefault:"0.95"`
	ShrinkFactor    float64 `env:"SHRINK_FACTOR" envDefault:"0.9"`
	GrowFactor      float64 `env:"GROW_FACTOR" envDefault:"1.1"`
}
