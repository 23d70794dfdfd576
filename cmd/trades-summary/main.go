// trades-summary 读取一个交易日志 CSV，打印成交数量和买卖方向的成交量汇总。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/betbot/bbot/internal/domain"
	"github.com/betbot/bbot/pkg/tradelog"
)

func main() {
	var file = flag.String("file", "", "trade log CSV path")
	flag.Parse()

	if *file == "" {
		fatal(fmt.Errorf("-file is required"))
	}

	trades, err := tradelog.Read(*file)
	if err != nil {
		fatal(err)
	}

	buyVolume := decimal.Zero
	sellVolume := decimal.Zero
	for _, t := range trades {
		switch t.Side {
		case domain.SideBuy:
			buyVolume = buyVolume.Add(t.Size)
		case domain.SideSell:
			sellVolume = sellVolume.Add(t.Size)
		}
	}

	fmt.Printf("trades      = %d\n", len(trades))
	fmt.Printf("buy volume  = %s\n", buyVolume)
	fmt.Printf("sell volume = %s\n", sellVolume)
	if len(trades) > 0 {
		last := trades[len(trades)-1]
		fmt.Printf("last        = seq=%d price=%s size=%s side=%s\n",
			last.Sequence, last.Price, last.Size, last.Side)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	os.Exit(1)
}
