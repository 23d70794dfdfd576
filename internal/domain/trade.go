package domain

import "github.com/shopspring/decimal"

// Trade 一条已执行的成交记录（交易日志的持久化单元）。
// Sequence 由调用方维护：进程内单调递增的成交序号。
// Price / Size 用 decimal 承载，字符串形式保持 venue 下发时的原始精度。
type Trade struct {
	Sequence uint64
	Price    decimal.Decimal
	Size     decimal.Decimal
	Side     Side
}
