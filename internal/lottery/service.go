package lottery

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"welfare-lottery-mcp/internal/model"
	"welfare-lottery-mcp/internal/summary"
)

// Messages returned to the caller in place of a draw.
const (
	MsgNoData       = "未获取到中奖信息"
	MsgEmpty        = "中奖列表为空"
	MsgShapeFailure = "响应结果解析错误"
)

// Status tags the outcome of one lookup.
type Status int

const (
	StatusOK Status = iota
	// StatusNoData covers transport failures and non-object payloads.
	StatusNoData
	StatusShapeFailure
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no_data"
	case StatusShapeFailure:
		return "shape_failure"
	case StatusEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Result is the outcome of Service.Last. Latest is set only for StatusOK.
type Result struct {
	Status Status
	Latest *model.DrawRecord
}

// Text renders the result as the string handed back to the caller.
func (r Result) Text(form summary.Form, linkBase string) string {
	switch r.Status {
	case StatusOK:
		return summary.Render(form, *r.Latest, linkBase)
	case StatusEmpty:
		return MsgEmpty
	case StatusShapeFailure:
		return MsgShapeFailure
	default:
		return MsgNoData
	}
}

// Fetcher is the upstream history API.
type Fetcher interface {
	HistoryLast(ctx context.Context, count *int) (any, error)
}

// Service runs the fetch/validate/extract pipeline. It keeps no state
// between calls.
type Service struct {
	Fetcher Fetcher
	Log     logrus.FieldLogger
}

func NewService(f Fetcher, log logrus.FieldLogger) *Service {
	return &Service{Fetcher: f, Log: log}
}

// Last fetches the newest draws and selects the latest one. Failures are
// logged here and reported only through Result.Status.
func (s *Service) Last(ctx context.Context, count *int) Result {
	v, err := s.Fetcher.HistoryLast(ctx, count)
	if err != nil {
		s.Log.WithError(err).Error("request error")
		return Result{Status: StatusNoData}
	}
	raw, ok := v.(map[string]any)
	if !ok {
		s.Log.WithField("type", jsonType(v)).Warn("response is not a JSON object")
		return Result{Status: StatusNoData}
	}

	env, err := model.Parse(raw)
	if err != nil {
		s.Log.WithFields(logrus.Fields{
			"payload": payloadString(raw),
			"error":   err.Error(),
		}).Error("error parsing response")
		return Result{Status: StatusShapeFailure}
	}

	latest, ok := env.Latest()
	if !ok {
		return Result{Status: StatusEmpty}
	}
	return Result{Status: StatusOK, Latest: &latest}
}

func payloadString(raw map[string]any) string {
	b, err := json.Marshal(raw)
	if err != nil {
		return "<unencodable>"
	}
	return string(b)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}
