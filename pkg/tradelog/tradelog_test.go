package tradelog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/bbot/internal/domain"
)

func TestLogTradeCreatesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")

	err := LogTrade(path, decimal.NewFromInt(10), decimal.NewFromInt(10), domain.SideSell, 1)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assertion := assert.New(t)
	assertion.Equal([]string{"sequence", "price", "size", "side"}, records[0])
	assertion.Equal("1", records[1][0])
	assertion.Equal("10", records[1][1])
	assertion.Equal("10", records[1][2])
	assertion.Equal("Sell", records[1][3])
}

func TestAppendKeepsDecimalScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")
	l := New(path)

	// venue 下发 "0.250"，日志里保持原始精度
	err := l.Append(domain.Trade{
		Sequence: 7,
		Price:    decimal.RequireFromString("0.250"),
		Size:     decimal.RequireFromString("12.5"),
		Side:     domain.SideBuy,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "7,0.250,12.5,Buy", lines[1])
}

func TestAppendSequential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")
	l := New(path)

	const n = 5
	for i := 1; i <= n; i++ {
		err := l.Append(domain.Trade{
			Sequence: uint64(i),
			Price:    decimal.NewFromFloat(100.5),
			Size:     decimal.NewFromInt(2),
			Side:     domain.SideBuy,
		})
		require.NoError(t, err)
	}

	trades, err := Read(path)
	require.NoError(t, err)
	require.Len(t, trades, n)
	for i, tr := range trades {
		assert.Equal(t, uint64(i+1), tr.Sequence)
		assert.Equal(t, "100.5", tr.Price.String())
		assert.Equal(t, domain.SideBuy, tr.Side)
	}

	// 表头只写一次
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "sequence,price,size,side"))
}

func TestAppendRejectsInvalidSide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")
	err := New(path).Append(domain.Trade{Sequence: 1, Side: domain.Side("hold")})
	require.Error(t, err)

	// 非法记录不应该创建文件
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReadRejectsUnexpectedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c,d\n1,10,10,Sell\n"), 0644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestSessionPath(t *testing.T) {
	p1 := SessionPath("data", "BTC-USD")
	p2 := SessionPath("data", "BTC-USD")

	assert.NotEqual(t, p1, p2)
	assert.True(t, strings.HasPrefix(filepath.Base(p1), "btc-usd-"))
	assert.True(t, strings.HasSuffix(p1, ".csv"))
	assert.Equal(t, "data", filepath.Dir(p1))
}

func TestLogTradeInvalidPath(t *testing.T) {
	dir := t.TempDir()
	// 路径指向目录，open 必然失败
	err := LogTrade(dir, decimal.NewFromInt(1), decimal.NewFromInt(1), domain.SideBuy, 1)
	require.Error(t, err)
}
