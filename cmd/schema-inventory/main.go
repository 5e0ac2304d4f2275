package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"welfare-lottery-mcp/internal/fetch"
	"welfare-lottery-mcp/internal/logging"
	"welfare-lottery-mcp/internal/model"
)

type TypeSet map[string]struct{}

type SchemaMap map[string]TypeSet

// Inventory lists every JSON path seen in one /history/last response and
// whether that response passes envelope validation.
type Inventory struct {
	GeneratedAtUTC string  `json:"generated_at_utc"`
	URL            string  `json:"url"`
	Valid          bool    `json:"valid"`
	ValidationErr  string  `json:"validation_error,omitempty"`
	Fields         []Field `json:"fields"`
}

type Field struct {
	Path  string   `json:"path"`
	Types []string `json:"types"`
}

func main() {
	var (
		apiBase  = flag.String("api-base", fetch.DefaultBaseURL, "lottery history API base URL")
		count    = flag.Int("count", 0, "number of draws to request (0 = API default)")
		logLevel = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	client := fetch.NewClient()
	client.BaseURL = *apiBase

	var n *int
	if *count > 0 {
		n = count
	}
	if err := run(context.Background(), client, n, log, os.Stdout); err != nil {
		log.WithError(err).Fatal("schema inventory failed")
	}
}

// run fetches one payload and writes its inventory as JSON to w.
func run(ctx context.Context, client *fetch.Client, count *int, log logrus.FieldLogger, w io.Writer) error {
	v, err := client.HistoryLast(ctx, count)
	if err != nil {
		return err
	}

	inv := buildInventory(v)
	inv.URL = client.HistoryLastURL(count)
	payload, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	log.WithField("valid", inv.Valid).Info("inventory built")
	_, err = fmt.Fprintln(w, string(payload))
	return err
}

func buildInventory(v any) Inventory {
	schema := make(SchemaMap)
	walkSchema(v, "$", schema)
	inv := Inventory{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Fields:         schemaToFields(schema),
	}

	raw, ok := v.(map[string]any)
	if !ok {
		inv.ValidationErr = "response is not a JSON object"
		return inv
	}
	if _, err := model.Parse(raw); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			inv.ValidationErr = verr.Err.Error()
		} else {
			inv.ValidationErr = err.Error()
		}
		return inv
	}
	inv.Valid = true
	return inv
}

// walkSchema records the type of every path. Unlike a single-sample walk,
// all array elements are visited so optional fields missing from the
// newest draw still show up.
func walkSchema(v any, path string, schema SchemaMap) {
	switch x := v.(type) {
	case map[string]any:
		addType(schema, path, "object")
		for k, child := range x {
			walkSchema(child, path+"."+k, schema)
		}
	case []any:
		addType(schema, path, "array")
		if len(x) == 0 {
			addType(schema, path+"[]", "unknown")
		}
		for _, child := range x {
			walkSchema(child, path+"[]", schema)
		}
	case string:
		addType(schema, path, "string")
	case bool:
		addType(schema, path, "bool")
	case float64:
		addType(schema, path, "number")
	case nil:
		addType(schema, path, "null")
	default:
		addType(schema, path, fmt.Sprintf("%T", v))
	}
}

func addType(schema SchemaMap, path string, typ string) {
	set, ok := schema[path]
	if !ok {
		set = make(TypeSet)
		schema[path] = set
	}
	set[typ] = struct{}{}
}

func schemaToFields(schema SchemaMap) []Field {
	paths := make([]string, 0, len(schema))
	for p := range schema {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	fields := make([]Field, 0, len(paths))
	for _, p := range paths {
		types := make([]string, 0, len(schema[p]))
		for t := range schema[p] {
			types = append(types, t)
		}
		sort.Strings(types)
		fields = append(fields, Field{Path: p, Types: types})
	}
	return fields
}
