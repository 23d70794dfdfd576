// settings-check 校验 settings JSON 文件并打印生效值。
// 解析/校验失败以非零码退出：loader 只返回错误，退出决定在这里做。
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/betbot/bbot/internal/settings"
	"github.com/betbot/bbot/pkg/config"
	"github.com/betbot/bbot/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", getenv("BBOT_CONFIG", "bbot.yaml"), "app config YAML path")
		path       = flag.String("settings", "", "settings JSON path (default: settings_file from app config)")
	)
	flag.Parse()

	// .env 可选，不存在不是错误
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *path == "" {
		*path = cfg.SettingsFile
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logging.Level,
		OutputFile: cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}); err != nil {
		fatal(err)
	}

	s, err := settings.Read(*path)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			fatal(errors.Errorf("settings 文件不存在: %s", *path))
		}
		fatal(err)
	}

	fmt.Printf("market_name     = %s\n", s.MarketName)
	fmt.Printf("time_delta      = %d\n", s.TimeDelta)
	fmt.Printf("bb_period       = %d\n", s.BBPeriod)
	fmt.Printf("bb_std_dev      = %g\n", s.BBStdDev)
	fmt.Printf("orderbook_depth = %d\n", s.OrderbookDepth)
	fmt.Printf("live            = %v\n", s.Live)
	fmt.Printf("order_size      = %s\n", s.OrderSize)
	fmt.Printf("tp_percent      = %s\n", s.TpPercent)
	fmt.Printf("sl_percent      = %s\n", s.SlPercent)
	fmt.Printf("write_to_file   = %v\n", s.WriteToFile)

	logger.Infof("settings OK: market=%s live=%v write_to_file=%v", s.MarketName, s.Live, s.WriteToFile)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	os.Exit(1)
}
