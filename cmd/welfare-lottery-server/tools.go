package main

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"welfare-lottery-mcp/internal/lottery"
)

const lastToolDescription = `获取福利彩票最新中奖信息，包含：日期、期号、红球（6个1-33的数字）、蓝球（1个1-16的数字）、每个省份一等奖中奖注数、各等级中奖信息（各等级中间数量及单注金额）、当期销售额、当期后奖金池、视频链接、详情链接
双色球玩儿法说明：双色球投注区分为红色球号码区和蓝色球号码区，红色球号码区由1-33共三十三个号码组成，蓝色球号码区由1-16共十六个号码组成。
中奖等级对照表：一等奖：6+1，二等奖：6+0，三等奖：5+1，四等奖：5+0、4+1，五等奖：4+0、3+1，六等奖：2+1、1+1、0+1。`

type LastArgs struct {
	Count *int `json:"count,omitempty"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// lastInputSchema accepts null for count and leaves the lower bound to
// lastHandler, so bad values come back as tool errors rather than
// invalid-params faults.
func lastInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"count": {
				Types:       []string{"null", "integer"},
				Description: "获取最新的多少期信息 (>= 1, omit or null for the API default)",
			},
		},
	}
}

// registerTools attaches every tool to server and returns the name/description
// list served by GET /tools.
func registerTools(server *mcp.Server, cfg ServerConfig, svc *lottery.Service) []toolInfo {
	registry := make([]toolInfo, 0, 1)

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_welfare_lottery_last",
		Description: lastToolDescription,
		InputSchema: lastInputSchema(),
	}, lastHandler(cfg, svc))

	return registry
}

func lastHandler(cfg ServerConfig, svc *lottery.Service) func(context.Context, *mcp.CallToolRequest, LastArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LastArgs) (*mcp.CallToolResult, any, error) {
		if args.Count != nil && *args.Count < 1 {
			return toolError(fmt.Errorf("count must be a positive integer")), nil, nil
		}
		res := svc.Last(ctx, args.Count)
		svc.Log.WithField("status", res.Status.String()).Debug("get_welfare_lottery_last")
		return toolText(res.Text(cfg.Summary, cfg.LinkBase)), nil, nil
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolText(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: s},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
