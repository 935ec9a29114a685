// Package catalog loads the pump catalog workbook and selects a pump for a
// computed hydraulic requirement.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Pump is one catalog entry.
type Pump struct {
	Model   string
	Phase   string
	HP      float64
	Stages  int
	MinHead float64 // m
	MaxHead float64 // m
}

// InHeadRange reports whether tdh falls within the pump's head range.
func (p Pump) InHeadRange(tdh float64) bool {
	return p.MinHead <= tdh && tdh <= p.MaxHead
}

// Catalog is a pump catalog sorted by HP, then stages.
type Catalog struct {
	Pumps []Pump
}

// expected workbook column headers, matched after trimming
const (
	colModel   = "Pump"
	colPhase   = "Phase"
	colHP      = "HP"
	colStages  = "No of Stages"
	colMinHead = "Min Head (m)"
	colMaxHead = "Max Head (m)"
)

// Load reads the catalog from the first sheet of an .xlsx workbook.
func Load(path string) (*Catalog, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog workbook %s has no sheets", path)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog sheet %s is empty", sheets[0])
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}
	for _, required := range []string{colModel, colPhase, colHP, colStages, colMinHead, colMaxHead} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog sheet is missing column %q", required)
		}
	}

	catalog := &Catalog{}
	for i, row := range rows[1:] {
		pump, err := parsePump(row, columns)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+2, err)
		}
		if pump == nil {
			continue // blank row
		}
		catalog.Pumps = append(catalog.Pumps, *pump)
	}

	if len(catalog.Pumps) == 0 {
		return nil, fmt.Errorf("catalog sheet %s has no pump rows", sheets[0])
	}

	catalog.sort()
	return catalog, nil
}

// NewCatalog builds a catalog from already-parsed pumps. Used by tests and
// callers with in-memory data.
func NewCatalog(pumps []Pump) *Catalog {
	catalog := &Catalog{Pumps: append([]Pump(nil), pumps...)}
	catalog.sort()
	return catalog
}

func (c *Catalog) sort() {
	sort.SliceStable(c.Pumps, func(i, j int) bool {
		if c.Pumps[i].HP != c.Pumps[j].HP {
			return c.Pumps[i].HP < c.Pumps[j].HP
		}
		return c.Pumps[i].Stages < c.Pumps[j].Stages
	})
}

func parsePump(row []string, columns map[string]int) (*Pump, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	model := cell(colModel)
	if model == "" {
		return nil, nil
	}

	hp, err := strconv.ParseFloat(cell(colHP), 64)
	if err != nil {
		return nil, fmt.Errorf("bad HP value %q", cell(colHP))
	}
	stages, err := strconv.Atoi(cell(colStages))
	if err != nil {
		return nil, fmt.Errorf("bad stage count %q", cell(colStages))
	}
	minHead, err := strconv.ParseFloat(cell(colMinHead), 64)
	if err != nil {
		return nil, fmt.Errorf("bad min head %q", cell(colMinHead))
	}
	maxHead, err := strconv.ParseFloat(cell(colMaxHead), 64)
	if err != nil {
		return nil, fmt.Errorf("bad max head %q", cell(colMaxHead))
	}

	return &Pump{
		Model:   model,
		Phase:   cell(colPhase),
		HP:      hp,
		Stages:  stages,
		MinHead: minHead,
		MaxHead: maxHead,
	}, nil
}
