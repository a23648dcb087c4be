package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	// 送料ポリシー
	FreeShippingThreshold float64 // この小計以上で送料無料（999）
	ShippingFee           float64 // 送料（50）

	// メール（未設定ならログ出力のみのソフト成功）
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	GoEnv string // dev/prod
}

// Loadは環境変数から読む。DB接続はinfra/dbが直接環境変数を見る。
func Load() (Config, error) {
	threshold, err := floatOrDefault("FREE_SHIPPING_THRESHOLD", 999)
	if err != nil {
		return Config{}, err
	}
	fee, err := floatOrDefault("SHIPPING_FEE", 50)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		FreeShippingThreshold: threshold,
		ShippingFee:           fee,

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getenv("MAIL_FROM", "noreply@eleganceearrings.com"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	if cfg.FreeShippingThreshold < 0 {
		return Config{}, fmt.Errorf("FREE_SHIPPING_THRESHOLD must be >= 0")
	}
	if cfg.ShippingFee < 0 {
		return Config{}, fmt.Errorf("SHIPPING_FEE must be >= 0")
	}

	return cfg, nil
}

// MailConfigured はSMTPが使える状態かどうか。
func (c Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func floatOrDefault(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}
