package domain

import (
	"fmt"
	"strings"
)

// Side 交易方向（闭合枚举，只有 Buy / Sell 两个值）。
// 文本形式会原样写进交易日志 CSV，下游对账/分析工具依赖这个拼写。
type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

// Invert 返回相反方向（对冲/平仓用）：Buy -> Sell，Sell -> Buy。
func (s Side) Invert() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		// Side 是闭合域，走到这里说明调用方绕过了构造函数
		panic(fmt.Sprintf("domain: invalid side %q", string(s)))
	}
}

// ParseSide 解析文本方向。大小写不敏感，兼容 "BUY"/"SELL" 风格的 venue 返回值。
func ParseSide(v string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return "", fmt.Errorf("unknown side: %q", v)
	}
}

// Validate 校验来自文件/外部输入的方向值。
func (s Side) Validate() error {
	switch s {
	case SideBuy, SideSell:
		return nil
	default:
		return fmt.Errorf("invalid side: %q", string(s))
	}
}

func (s Side) String() string { return string(s) }
