// Package tradelog 把成交记录逐行追加到 CSV 文件（审计/对账用的 durable log）。
//
// 文件格式（列顺序和文本形式是下游消费方依赖的，不要改）：
//
//	sequence,price,size,side
//	1,10,10,Sell
package tradelog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/bbot/internal/domain"
)

var header = []string{"sequence", "price", "size", "side"}

// Logger 面向单个日志文件的追加器。
//
// 进程内用互斥锁串行化 Append；文件用 O_APPEND 打开，多进程写同一路径时
// 由操作系统保证行级追加。多进程同时初始化同一个新文件（表头竞争）不支持。
type Logger struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Logger {
	return &Logger{path: path}
}

func (l *Logger) Path() string { return l.path }

// Append 追加一条成交记录。文件不存在（或为空）时先写表头。
// 返回 nil 时该行已经 flush 给操作系统；写入失败原样上抛，不重试。
func (l *Logger) Append(t domain.Trade) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return appendRow(l.path, t)
}

// LogTrade 一次性追加（不持有 Logger 的低频调用方用）。
// 并发调用同一路径时不保证行不交错，见 Logger。
func LogTrade(path string, price, size decimal.Decimal, side domain.Side, sequence uint64) error {
	return appendRow(path, domain.Trade{
		Sequence: sequence,
		Price:    price,
		Size:     size,
		Side:     side,
	})
}

func appendRow(path string, t domain.Trade) error {
	if err := t.Side.Validate(); err != nil {
		return err
	}

	needHeader := false
	if info, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "stat trade log %s", path)
		}
		needHeader = true
	} else if info.Size() == 0 {
		needHeader = true
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open trade log %s", path)
	}

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			f.Close()
			return errors.Wrap(err, "write trade log header")
		}
	}
	row := []string{
		strconv.FormatUint(t.Sequence, 10),
		t.Price.String(),
		t.Size.String(),
		t.Side.String(),
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return errors.Wrap(err, "write trade log row")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrap(err, "flush trade log")
	}
	return errors.Wrapf(f.Close(), "close trade log %s", path)
}

// Read 读回整个交易日志（对账/分析工具用）。
// 表头不匹配或行解析失败都报错，不做部分读取。
func Read(path string) ([]domain.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open trade log %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read trade log %s", path)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !isHeader(records[0]) {
		return nil, errors.Errorf("trade log %s: unexpected header %v", path, records[0])
	}

	trades := make([]domain.Trade, 0, len(records)-1)
	for i, rec := range records[1:] {
		t, err := parseRow(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "trade log %s line %d", path, i+2)
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// SessionPath 生成一次运行专用的日志文件路径（<market>-<uuid>.csv）。
// 每次启动单独一个文件，避免不同 session 的序号混在一起。
func SessionPath(dir, market string) string {
	name := fmt.Sprintf("%s-%s.csv", strings.ToLower(market), uuid.NewString())
	return filepath.Join(dir, name)
}

func isHeader(rec []string) bool {
	if len(rec) != len(header) {
		return false
	}
	for i := range header {
		if rec[i] != header[i] {
			return false
		}
	}
	return true
}

func parseRow(rec []string) (domain.Trade, error) {
	if len(rec) != len(header) {
		return domain.Trade{}, errors.Errorf("expected %d columns, got %d", len(header), len(rec))
	}
	seq, err := strconv.ParseUint(rec[0], 10, 64)
	if err != nil {
		return domain.Trade{}, errors.Wrap(err, "parse sequence")
	}
	price, err := decimal.NewFromString(rec[1])
	if err != nil {
		return domain.Trade{}, errors.Wrap(err, "parse price")
	}
	size, err := decimal.NewFromString(rec[2])
	if err != nil {
		return domain.Trade{}, errors.Wrap(err, "parse size")
	}
	side, err := domain.ParseSide(rec[3])
	if err != nil {
		return domain.Trade{}, err
	}
	return domain.Trade{Sequence: seq, Price: price, Size: size, Side: side}, nil
}
