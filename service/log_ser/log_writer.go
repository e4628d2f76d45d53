package log_ser

import (
	"encoding/json"
	"time"

	"blogcms/global"
	"blogcms/models"
)

// DBWriter 把zap的JSON日志异步写进数据库，批量落库减少写放大。
// 通道满时丢弃日志，日志链路不能反过来拖垮业务
type DBWriter struct {
	ch chan []byte
}

const (
	logBufferSize  = 1024
	logBatchSize   = 100
	logFlushPeriod = 3 * time.Second
)

func NewDBWriter() *DBWriter {
	w := &DBWriter{
		ch: make(chan []byte, logBufferSize),
	}
	go w.run()
	return w
}

func (w *DBWriter) Write(p []byte) (int, error) {
	data := make([]byte, len(p))
	copy(data, p)
	select {
	case w.ch <- data:
	default:
	}
	return len(p), nil
}

type logLine struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Caller  string `json:"caller"`
	Message string `json:"msg"`
}

func (w *DBWriter) run() {
	ticker := time.NewTicker(logFlushPeriod)
	defer ticker.Stop()

	batch := make([]models.LogModel, 0, logBatchSize)
	flush := func() {
		if len(batch) == 0 || global.DB == nil {
			return
		}
		if err := global.DB.Create(&batch).Error; err == nil {
			batch = batch[:0]
		}
	}

	for {
		select {
		case data := <-w.ch:
			var line logLine
			if err := json.Unmarshal(data, &line); err != nil {
				continue
			}
			batch = append(batch, models.LogModel{
				Level:   line.Level,
				Caller:  line.Caller,
				Message: line.Message,
			})
			if len(batch) >= logBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
