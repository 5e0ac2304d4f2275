package summary

import (
	"fmt"
	"strings"

	"welfare-lottery-mcp/internal/model"
)

// DefaultLinkBase is prefixed to the relative video/details links.
const DefaultLinkBase = "https://www.cwl.gov.cn"

// Form selects how a draw is rendered.
type Form string

const (
	FormCompact   Form = "compact"
	FormNarrative Form = "narrative"
)

// ParseForm normalizes a form name. Empty means compact.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormCompact):
		return FormCompact, nil
	case string(FormNarrative):
		return FormNarrative, nil
	default:
		return "", fmt.Errorf("unknown summary form %q (want compact|narrative)", s)
	}
}

// Render formats d in the given form.
func Render(form Form, d model.DrawRecord, linkBase string) string {
	if form == FormNarrative {
		return Narrative(d, linkBase)
	}
	return Compact(d)
}

// Compact renders only the winning numbers, e.g.
// "红球: 01, 02, 03, 04, 05, 06 蓝球: 07".
func Compact(d model.DrawRecord) string {
	reds := strings.Fields(d.Red)
	return fmt.Sprintf("红球: %s 蓝球: %s", strings.Join(reds, ", "), d.Blue)
}

// Narrative renders a one-sentence description of the draw. Clauses for
// missing or empty fields are left out entirely.
func Narrative(d model.DrawRecord, linkBase string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s第%s期中奖号码：红球%s，蓝球%s", d.Date, d.Code, d.Red, d.Blue)

	if v, ok := present(d.Content); ok {
		b.WriteString("，一等奖地理分布为：" + v)
	}
	if len(d.PrizeGrades) > 0 {
		grades := make([]string, 0, len(d.PrizeGrades))
		for _, g := range d.PrizeGrades {
			grades = append(grades, fmt.Sprintf("%s等奖：%s注，每注奖金：%s元", deref(g.Type), deref(g.Num), deref(g.Money)))
		}
		b.WriteString("，各等级中奖信息为：" + strings.Join(grades, "、"))
	}
	if v, ok := present(d.Sales); ok {
		b.WriteString("，销售额为：" + v + "元")
	}
	if v, ok := present(d.PoolMoney); ok {
		b.WriteString("，奖金池为：" + v + "元")
	}
	if v, ok := present(d.VideoLink); ok {
		fmt.Fprintf(&b, "，[视频链接](%s%s)", linkBase, v)
	}
	if v, ok := present(d.DetailsLink); ok {
		fmt.Fprintf(&b, "，[详情链接](%s%s)", linkBase, v)
	}
	return b.String()
}

func present(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
