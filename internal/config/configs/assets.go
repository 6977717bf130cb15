package configs

import "time"

// Assets configures where creative assets live. When Bucket is empty no
// asset URLs are produced and creative references are passed through as-is.
type Assets struct {
	Bucket          string        `env:"BUCKET"`
	Region          string        `env:"REGION" envDefault:"us-east-1"`
	Endpoint        string        `env:"ENDPOINT"`
	AccessKeyID     string        `env:"ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"SECRET_ACCESS_KEY"`
	PresignTTL      time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
}

// Enabled reports whether a bucket is configured.
func (c Assets) Enabled() bool {
	return c.Bucket != ""
}
