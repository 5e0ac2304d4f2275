package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"welfare-lottery-mcp/internal/model"
)

func str(s string) *string { return &s }

func baseDraw() model.DrawRecord {
	return model.DrawRecord{
		Code:        "2025050",
		Date:        "2025-05-06(二)",
		Red:         "01 02 03 04 05 06",
		Blue:        "07",
		PrizeGrades: []model.PrizeGrade{},
	}
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "红球: 01, 02, 03, 04, 05, 06 蓝球: 07", Compact(baseDraw()))
}

func TestCompact_IrregularWhitespace(t *testing.T) {
	d := baseDraw()
	d.Red = "  09\t12  18 22 27   33 "
	d.Blue = "16"
	assert.Equal(t, "红球: 09, 12, 18, 22, 27, 33 蓝球: 16", Compact(d))
}

func TestNarrative_RequiredOnly(t *testing.T) {
	got := Narrative(baseDraw(), DefaultLinkBase)
	assert.Equal(t, "2025-05-06(二)第2025050期中奖号码：红球01 02 03 04 05 06，蓝球07", got)
	assert.NotContains(t, got, "None")
	assert.False(t, strings.HasSuffix(got, "，"))
}

func TestNarrative_AllClausesInOrder(t *testing.T) {
	d := baseDraw()
	d.Content = str("北京1注,广东2注")
	d.PrizeGrades = []model.PrizeGrade{
		{Type: str("一"), Num: str("3"), Money: str("5000000")},
		{Type: str("二"), Num: str("100"), Money: str("200000")},
	}
	d.Sales = str("350000000")
	d.PoolMoney = str("1800000000")
	d.VideoLink = str("/c/2025/05/06/1.shtml")
	d.DetailsLink = str("/c/2025/05/06/2.shtml")

	want := "2025-05-06(二)第2025050期中奖号码：红球01 02 03 04 05 06，蓝球07" +
		"，一等奖地理分布为：北京1注,广东2注" +
		"，各等级中奖信息为：一等奖：3注，每注奖金：5000000元、二等奖：100注，每注奖金：200000元" +
		"，销售额为：350000000元" +
		"，奖金池为：1800000000元" +
		"，[视频链接](https://www.cwl.gov.cn/c/2025/05/06/1.shtml)" +
		"，[详情链接](https://www.cwl.gov.cn/c/2025/05/06/2.shtml)"
	assert.Equal(t, want, Narrative(d, DefaultLinkBase))
}

func TestNarrative_OmitsMissingTrailingClauses(t *testing.T) {
	d := baseDraw()
	d.Content = str("北京1注")
	d.Sales = str("")

	got := Narrative(d, DefaultLinkBase)
	assert.True(t, strings.HasSuffix(got, "，一等奖地理分布为：北京1注"))
	for _, s := range []string{"销售额", "奖金池", "视频链接", "详情链接", "各等级"} {
		assert.NotContains(t, got, s)
	}
}

func TestNarrative_NullGradeFieldsRenderEmpty(t *testing.T) {
	d := baseDraw()
	d.PrizeGrades = []model.PrizeGrade{{Type: str("六")}}
	assert.Contains(t, Narrative(d, DefaultLinkBase), "各等级中奖信息为：六等奖：注，每注奖金：元")
}

func TestNarrative_CustomLinkBase(t *testing.T) {
	d := baseDraw()
	d.DetailsLink = str("/x")
	assert.Contains(t, Narrative(d, "http://example.test"), "[详情链接](http://example.test/x)")
}

func TestParseForm(t *testing.T) {
	f, err := ParseForm("")
	require.NoError(t, err)
	assert.Equal(t, FormCompact, f)

	f, err = ParseForm(" Narrative ")
	require.NoError(t, err)
	assert.Equal(t, FormNarrative, f)

	_, err = ParseForm("both")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	d := baseDraw()
	assert.Equal(t, Compact(d), Render(FormCompact, d, DefaultLinkBase))
	assert.Equal(t, Narrative(d, DefaultLinkBase), Render(FormNarrative, d, DefaultLinkBase))
}
