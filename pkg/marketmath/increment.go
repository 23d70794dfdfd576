package marketmath

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidIncrement 非法 increment（零或负数）。
var ErrInvalidIncrement = errors.New("marketmath: increment must be positive")

// FromIncrement 把 venue 下发的最小价格/数量步长换算成小数位数（precision）。
//
// 结果 = increment 规范化（去掉尾随零）后小数点右侧的位数：
//
//	1     -> 0
//	0.1   -> 1
//	0.001 -> 3
//	0.250 -> 2
//
// 零或负的 increment 返回 ErrInvalidIncrement。正常 venue 不会下发这种值，
// 出现说明上游解析有 bug，宁可报错也不猜一个精度。
func FromIncrement(increment decimal.Decimal) (int32, error) {
	if increment.Sign() <= 0 {
		return 0, errors.Wrapf(ErrInvalidIncrement, "got %s", increment.String())
	}
	s := increment.String()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		// 整数步长（1、5、10...）没有小数位
		return 0, nil
	}
	frac := strings.TrimRight(s[dot+1:], "0")
	return int32(len(frac)), nil
}

// RoundToIncrement 把 v 四舍五入到 increment 对应的小数位数
// （下单前把价格/数量对齐到 venue 精度用）。
func RoundToIncrement(v, increment decimal.Decimal) (decimal.Decimal, error) {
	prec, err := FromIncrement(increment)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return v.Round(prec), nil
}
