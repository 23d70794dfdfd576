// Package settings 负责进程的静态运行时配置（settings JSON 文件）。
// 启动时读一次，之后当作不可变数据使用；没有缓存，也没有热加载。
package settings

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// 错误类别。调用方用 errors.Is 区分；要不要退出进程由入口决定，
// loader 本身绝不调用 os.Exit / log.Fatal。
var (
	ErrNotFound   = errors.New("settings file not found")
	ErrParse      = errors.New("settings file is not valid JSON")
	ErrValidation = errors.New("settings file failed validation")
)

// SettingsFile 运行时配置。JSON 键名是和外部工具约定好的，不要改。
type SettingsFile struct {
	// MarketName 市场标识，例如 "BTC-USD"（必填）
	MarketName string `json:"market_name"`
	// TimeDelta K 线间隔（整数秒，必填）
	TimeDelta uint64 `json:"time_delta"`
	// BBPeriod 布林带统计窗口长度（必填）
	BBPeriod uint `json:"bb_period"`
	// BBStdDev 布林带标准差倍数（必填）
	BBStdDev float64 `json:"bb_std_dev"`
	// OrderbookDepth 订阅的订单簿深度，0 表示不限制（必填）
	OrderbookDepth uint32 `json:"orderbook_depth"`
	// Live true=实盘，false=模拟（默认 false）
	Live bool `json:"live"`
	// OrderSize 下单数量（默认 0）
	OrderSize decimal.Decimal `json:"order_size"`
	// TpPercent 止盈百分比（默认 0）
	TpPercent decimal.Decimal `json:"tp_percent"`
	// SlPercent 止损百分比（默认 0）
	SlPercent decimal.Decimal `json:"sl_percent"`
	// WriteToFile 是否把成交写入 CSV 日志（默认 false）
	WriteToFile bool `json:"write_to_file"`
}

// rawSettings 用指针区分「字段缺失」和「显式零值」：
// 必填字段缺失必须报错，绝不能静默落到零值。
type rawSettings struct {
	MarketName     *string          `json:"market_name"`
	TimeDelta      *uint64          `json:"time_delta"`
	BBPeriod       *uint            `json:"bb_period"`
	BBStdDev       *float64         `json:"bb_std_dev"`
	OrderbookDepth *uint32          `json:"orderbook_depth"`
	Live           *bool            `json:"live"`
	OrderSize      *decimal.Decimal `json:"order_size"`
	TpPercent      *decimal.Decimal `json:"tp_percent"`
	SlPercent      *decimal.Decimal `json:"sl_percent"`
	WriteToFile    *bool            `json:"write_to_file"`
}

// Read 读取并解析 settings 文件，应用可选字段默认值并做结构校验。
func Read(path string) (*SettingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "read settings %s", path)
	}

	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		// 类型不匹配（例如 bb_period 给了字符串、time_delta 给了负数）也算解析失败
		return nil, errors.Wrapf(ErrParse, "%s: %v", path, err)
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"market_name", raw.MarketName != nil},
		{"time_delta", raw.TimeDelta != nil},
		{"bb_period", raw.BBPeriod != nil},
		{"bb_std_dev", raw.BBStdDev != nil},
		{"orderbook_depth", raw.OrderbookDepth != nil},
	}
	for _, f := range required {
		if !f.ok {
			return nil, errors.Wrapf(ErrValidation, "%s: missing required field %s", path, f.name)
		}
	}

	s := &SettingsFile{
		MarketName:     *raw.MarketName,
		TimeDelta:      *raw.TimeDelta,
		BBPeriod:       *raw.BBPeriod,
		BBStdDev:       *raw.BBStdDev,
		OrderbookDepth: *raw.OrderbookDepth,
	}

	// 可选字段：缺失时取文档约定的默认值
	if raw.Live != nil {
		s.Live = *raw.Live
	}
	if raw.OrderSize != nil {
		s.OrderSize = *raw.OrderSize
	}
	if raw.TpPercent != nil {
		s.TpPercent = *raw.TpPercent
	}
	if raw.SlPercent != nil {
		s.SlPercent = *raw.SlPercent
	}
	if raw.WriteToFile != nil {
		s.WriteToFile = *raw.WriteToFile
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(ErrValidation, "%s: %v", path, err)
	}
	return s, nil
}

// Validate 结构校验（数值域检查；策略层业务规则不在这里管）。
func (s *SettingsFile) Validate() error {
	if strings.TrimSpace(s.MarketName) == "" {
		return errors.New("market_name 不能为空")
	}
	if s.TimeDelta == 0 {
		return errors.New("time_delta 必须大于 0")
	}
	if s.BBPeriod == 0 {
		return errors.New("bb_period 必须大于 0")
	}
	if s.BBStdDev < 0 {
		return errors.Errorf("bb_std_dev 不能为负数，当前值: %v", s.BBStdDev)
	}
	if s.OrderSize.IsNegative() {
		return errors.Errorf("order_size 不能为负数，当前值: %s", s.OrderSize)
	}
	if s.TpPercent.IsNegative() {
		return errors.Errorf("tp_percent 不能为负数，当前值: %s", s.TpPercent)
	}
	if s.SlPercent.IsNegative() {
		return errors.Errorf("sl_percent 不能为负数，当前值: %s", s.SlPercent)
	}
	return nil
}
