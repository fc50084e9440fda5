package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/pdl-lex/gridbridge"
	"github.com/pdl-lex/gridbridge/adapter"
	"github.com/pdl-lex/gridbridge/bridge"
	"github.com/pdl-lex/gridbridge/grid"
	"github.com/pdl-lex/gridbridge/internal/config"
	"github.com/pdl-lex/gridbridge/render"
)

func main() {
	configPath := flag.String("config", "", "Config file (YAML)")
	addr := flag.String("addr", "", "Listen address (overrides config)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: griddemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Grid Bridge demo - serves a live AG Grid backed by a Go component\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  griddemo                          Serve on :8080 with defaults\n")
		fmt.Fprintf(os.Stderr, "  griddemo -config griddemo.yaml    Serve with a config file\n")
		fmt.Fprintf(os.Stderr, "  griddemo -addr :9000              Serve on a different port\n")
	}

	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *addr != "" {
		cfg.Listen = *addr
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	component := newEmployeeGrid(cfg, log)

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatal("creating renderer", zap.Error(err))
	}

	b := bridge.New(log)
	b.AllowedOrigins = cfg.AllowedOrigins
	b.Register(component)

	mux := http.NewServeMux()
	mux.Handle("/ws", b)
	mux.HandleFunc("/gridbridge.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write(render.ShimJS())
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderPage(w, "Employees - Grid Bridge Demo", component, "/ws"); err != nil {
			log.Error("rendering page", zap.Error(err))
		}
	})

	log.Info("serving", zap.String("addr", cfg.Listen), zap.String("grid_id", component.ID))
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg.Level = lvl
	return zcfg.Build()
}

// newEmployeeGrid builds the demo component: an editable, paginated
// employee table with every handler wired to the logger.
func newEmployeeGrid(cfg config.Config, log *zap.Logger) *gridbridge.Component {
	options := &grid.Options{
		ColumnDefs: []grid.Column{
			grid.ColumnDef{Field: "name", HeaderName: "Name", Filter: grid.FilterText, Sortable: grid.Bool(true)},
			grid.ColumnDef{Field: "role", HeaderName: "Role", Filter: grid.FilterText, Editable: grid.Bool(true), CellEditor: grid.EditorSelect,
				CellEditorParams: map[string]interface{}{"values": []string{"Engineer", "Designer", "Manager", "Analyst"}}},
			grid.ColumnDef{Field: "age", HeaderName: "Age", Filter: grid.FilterNumber, Editable: grid.Bool(true), CellEditor: grid.EditorNumber, Width: grid.Int(100)},
			grid.ColGroupDef{HeaderName: "Location", Children: []grid.Column{
				grid.ColumnDef{Field: "office", HeaderName: "Office", Filter: grid.FilterText},
				grid.ColumnDef{Field: "startDate", HeaderName: "Start Date", Filter: grid.FilterDate},
			}},
		},
		RowData:            employees(),
		RowSelection:       &grid.RowSelection{Mode: grid.MultiRow},
		Pagination:         grid.Bool(true),
		PaginationPageSize: grid.Int(cfg.PageSize),
		AnimateRows:        grid.Bool(true),
		DefaultColDef:      map[string]interface{}{"resizable": true},
	}

	c := gridbridge.New(options)
	c.Theme = grid.Theme(cfg.Theme)
	c.DarkMode = cfg.Dark

	c.Handlers = &gridbridge.Handlers{
		CellClicked: func(cell map[string]interface{}) {
			log.Info("cell clicked", zap.Any("cell", cell))
		},
		CellValueChanged: func(rowIndex int, field string, value interface{}) {
			log.Info("cell edited",
				zap.Int("row", rowIndex),
				zap.String("field", field),
				zap.Any("value", value))
		},
		SelectionChanged: func(rows []map[string]interface{}, source, eventType string) {
			log.Info("selection changed",
				zap.Int("count", len(rows)),
				zap.String("source", source))
		},
		SortChanged: func(entries []adapter.SortEntry) {
			log.Info("sort changed", zap.Any("columns", entries))
		},
		FilterChanged: func(model map[string]interface{}) {
			log.Info("filter changed", zap.Any("model", model))
		},
		PaginationChanged: func(page, totalPages, pageSize int) {
			log.Info("page changed",
				zap.Int("page", page),
				zap.Int("total_pages", totalPages),
				zap.Int("page_size", pageSize))
		},
		GridReady: func(e interface{}) {
			log.Info("grid ready")
		},
	}

	return c
}

func employees() []map[string]interface{} {
	names := []string{
		"Ada Brook", "Ben Ito", "Carla Mendez", "Dev Patel", "Elif Kaya",
		"Franz Weber", "Grace Lin", "Hugo Marchand", "Ines Costa", "Jonas Berg",
		"Keiko Sato", "Liam Doyle", "Mara Novak", "Nils Olsen", "Oona Byrne",
		"Pavel Horak", "Quinn Adler", "Rosa Duarte", "Sama Haddad", "Tomas Ruiz",
	}
	roles := []string{"Engineer", "Designer", "Manager", "Analyst"}
	offices := []string{"Lisbon", "Berlin", "Tokyo", "Austin"}

	rows := make([]map[string]interface{}, 0, len(names))
	for i, name := range names {
		rows = append(rows, map[string]interface{}{
			"name":      name,
			"role":      roles[i%len(roles)],
			"age":       24 + (i*3)%30,
			"office":    offices[i%len(offices)],
			"startDate": fmt.Sprintf("20%02d-%02d-01", 15+i%9, 1+i%12),
		})
	}
	return rows
}
