package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"welfare-lottery-mcp/internal/fetch"
	"welfare-lottery-mcp/internal/logging"
	"welfare-lottery-mcp/internal/lottery"
	"welfare-lottery-mcp/internal/summary"
)

const (
	serverName    = "welfare-lottery"
	serverVersion = "0.1.0"
)

type ServerConfig struct {
	APIBase   string
	UserAgent string
	Timeout   time.Duration
	LinkBase  string
	Summary   summary.Form
}

func main() {
	var (
		apiBase   = flag.String("api-base", fetch.DefaultBaseURL, "lottery history API base URL")
		userAgent = flag.String("user-agent", fetch.DefaultUserAgent, "User-Agent sent upstream")
		timeout   = flag.Duration("timeout", fetch.DefaultTimeout, "upstream request timeout")
		linkBase  = flag.String("link-base", summary.DefaultLinkBase, "site prefixed to video/details links")
		form      = flag.String("summary", string(summary.FormCompact), "tool output form: compact|narrative")
		transport = flag.String("transport", "stdio", "MCP transport: stdio|http")
		addr      = flag.String("addr", ":8080", "HTTP listen address (transport=http)")
		mcpPath   = flag.String("path", "/mcp", "HTTP path for MCP endpoint (transport=http)")
		logLevel  = flag.String("log-level", "info", "log level: debug|info|warn|error")
	)
	flag.Parse()

	log, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	f, err := summary.ParseForm(*form)
	if err != nil {
		log.Fatal(err)
	}
	cfg := ServerConfig{
		APIBase:   *apiBase,
		UserAgent: *userAgent,
		Timeout:   *timeout,
		LinkBase:  *linkBase,
		Summary:   f,
	}

	server, registry := newServer(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *transport {
	case "stdio":
		log.WithField("summary", cfg.Summary).Info("MCP stdio server starting")
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			log.Fatal(err)
		}
	case "http":
		gin.SetMode(gin.ReleaseMode)
		srv := &http.Server{Addr: *addr, Handler: newRouter(server, registry, *mcpPath)}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Infof("MCP HTTP server listening on %s%s", *addr, *mcpPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown transport %q (want stdio|http)", *transport)
	}
}

// newServer builds the MCP server with its tools registered.
func newServer(cfg ServerConfig, log logrus.FieldLogger) (*mcp.Server, []toolInfo) {
	client := fetch.NewClient()
	client.BaseURL = cfg.APIBase
	client.UserAgent = cfg.UserAgent
	client.HTTP.Timeout = cfg.Timeout

	svc := lottery.NewService(client, log)

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		nil,
	)
	registry := registerTools(server, cfg, svc)
	return server, registry
}
