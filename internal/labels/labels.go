// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package labels generates C1 custom-dimension label blocks with
// incrementing identifiers and edit timestamps.
package labels

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/pdiddy/recordkit/pkg/types"
)

// TimeLayout renders timestamps as "04 April 2025 17:23".
const TimeLayout = "02 January 2006 15:04"

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

const blockTemplate = `<!-- Label {{.Number}} -->
<LABEL>{{.ID}}</LABEL> <AT Name="IsCalculated">N</AT> <AT Name="SwitchSignForFlow">N</AT> <AT Name="SwitchTypeForFlow">N</AT> <AT Name="UserDefined1">{{.Prefix}}</AT> <AT Name="UserDefined2"></AT> <AT Name="UserDefined3"></AT> <AT Name="SecurityClass">{{.SecurityClass}}</AT> <AT Name="SubmissionGroup">1</AT> <DEFAULTPARENT>{{.Parent}}</DEFAULTPARENT> <Note></Note> <Last_Edit_On>{{.Time}}</Last_Edit_On> <Last_Edit_By>{{.User}}</Last_Edit_By> <Last_Edit>Added as a sibling of {{.Parent}}</Last_Edit> <DESCRIPTION Language="English">{{.Description}}</DESCRIPTION>
</MEMBER> <MEMBER>
<NODE>
<PARENT>{{.Parent}}</PARENT> <CHILD>{{.ID}}</CHILD> <AT Name="AggrWeight">1</AT>
</NODE>
<LOG Type="ADD" Dimension="Custom1" Label="{{.ID}}" Action="Added as a sibling of {{.Parent}}" User="{{.User}}" Date="{{.Time}}" />
`

// block is the data rendered into one label.
type block struct {
	Number        int
	ID            string
	Prefix        string
	Parent        string
	User          string
	SecurityClass string
	Description   string
	Time          string
}

// Generator renders label blocks from a LabelsConfig.
type Generator struct {
	cfg   types.LabelsConfig
	clock Clock
	tmpl  *template.Template
}

// NewGenerator returns a Generator for cfg. A nil clock uses time.Now.
// A zero Count and empty string fields fall back to the defaults; Start is
// used as given.
func NewGenerator(cfg types.LabelsConfig, clock Clock) (*Generator, error) {
	def := types.DefaultConfig().Labels
	if cfg.Count < 0 {
		return nil, fmt.Errorf("label count must not be negative, got %d", cfg.Count)
	}
	if cfg.Count == 0 {
		cfg.Count = def.Count
	}
	if cfg.Prefix == "" {
		cfg.Prefix = def.Prefix
	}
	if cfg.Parent == "" {
		cfg.Parent = def.Parent
	}
	if cfg.User == "" {
		cfg.User = def.User
	}
	if cfg.SecurityClass == "" {
		cfg.SecurityClass = def.SecurityClass
	}
	if cfg.Description == "" {
		cfg.Description = def.Description
	}
	if clock == nil {
		clock = time.Now
	}

	tmpl, err := template.New("label").Parse(blockTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing label template: %w", err)
	}
	return &Generator{cfg: cfg, clock: clock, tmpl: tmpl}, nil
}

// ID returns the identifier assigned to the label at index.
func (g *Generator) ID(index int) string {
	return fmt.Sprintf("%s%d", g.cfg.Prefix, g.cfg.Start+index)
}

// Block renders the label at index. The timestamp is read from the clock
// each time.
func (g *Generator) Block(index int) (string, error) {
	var b strings.Builder
	err := g.tmpl.Execute(&b, block{
		Number:        index + 1,
		ID:            g.ID(index),
		Prefix:        g.cfg.Prefix,
		Parent:        g.cfg.Parent,
		User:          g.cfg.User,
		SecurityClass: g.cfg.SecurityClass,
		Description:   g.cfg.Description,
		Time:          g.clock().Format(TimeLayout),
	})
	if err != nil {
		return "", fmt.Errorf("rendering label %d: %w", index, err)
	}
	return b.String(), nil
}

// Header returns the comment line written before the first block.
func (g *Generator) Header() string {
	return fmt.Sprintf("# %d Unique C1 Labels\n\n", g.cfg.Count)
}

// WriteAll writes the header followed by every block, each separated from
// the next by one blank line. It returns the number of blocks written.
func (g *Generator) WriteAll(w io.Writer) (int, error) {
	if _, err := io.WriteString(w, g.Header()); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}
	for i := 0; i < g.cfg.Count; i++ {
		text, err := g.Block(i)
		if err != nil {
			return i, err
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return i, fmt.Errorf("writing label %d: %w", i, err)
		}
	}
	return g.cfg.Count, nil
}

// Generate writes every block to cfg.OutputPath. It returns the absolute
// path of the file and the number of blocks written.
func Generate(cfg types.LabelsConfig, clock Clock) (string, int, error) {
	g, err := NewGenerator(cfg, clock)
	if err != nil {
		return "", 0, err
	}

	path := cfg.OutputPath
	if path == "" {
		path = types.DefaultConfig().Labels.OutputPath
	}
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	n, err := g.WriteAll(bw)
	if err != nil {
		return "", n, err
	}
	if err := bw.Flush(); err != nil {
		return "", n, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", n, fmt.Errorf("closing %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", n, fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, n, nil
}
