// Diagnostics are the irregularities we can live with. They go to a
// logger, and to a channel if the caller gave us one. Fatal problems do
// not come through here. They are returned as errors from Read.

package pdb

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A Diag is one recoverable anomaly met during parsing. Line is the
// number of the input line that provoked it, counting from 1.
type Diag struct {
	Line int
	Msg  string
}

// warnf reports a recoverable anomaly. The channel send must never
// block, so if the caller is not draining the channel, messages are
// dropped there. They still reach the logger.
func (pr *Reader) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	pr.log.Warnf("line %d: %s", pr.n, msg)
	if pr.diagc != nil {
		select {
		case pr.diagc <- Diag{Line: pr.n, Msg: msg}:
		default:
		}
	}
}

// LogWhere decides where diagnostic output should go. "" means throw
// it away, "stdout" means standard output and anything else is treated
// as a file name to append to.
func LogWhere(outinfo string) (*zap.SugaredLogger, error) {
	var ws zapcore.WriteSyncer
	switch outinfo {
	case "":
		return zap.NewNop().Sugar(), nil
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0777)
		if err != nil {
			return nil, err
		}
		ws = zapcore.AddSync(fp)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, ws, zapcore.WarnLevel)).Sugar(), nil
}
