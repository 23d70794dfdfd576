package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	if err := Init(Config{Level: "nope"}); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if Logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level got=%v want=info", Logger.GetLevel())
	}
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bbot.log")
	err := Init(Config{
		Level:      "debug",
		OutputFile: path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if got := GetCurrentLogFile(); got != path {
		t.Fatalf("GetCurrentLogFile got=%s want=%s", got, path)
	}

	// lumberjack 在首次写入时才创建文件
	Info("logger smoke test")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
