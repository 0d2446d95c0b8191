// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package labels

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recordkit/pkg/types"
)

func fixedClock() time.Time {
	return time.Date(2025, time.April, 4, 17, 23, 45, 0, time.UTC)
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(types.DefaultConfig().Labels, fixedClock)
	require.NoError(t, err)
	return g
}

func TestID(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		index int
		want  string
	}{
		{0, "DS903"},
		{1, "DS904"},
		{97, "DS1000"},
		{999, "DS1902"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.ID(tt.index))
	}
}

func TestBlock(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Block(0)
	require.NoError(t, err)

	want := `<!-- Label 1 -->
<LABEL>DS903</LABEL> <AT Name="IsCalculated">N</AT> <AT Name="SwitchSignForFlow">N</AT> <AT Name="SwitchTypeForFlow">N</AT> <AT Name="UserDefined1">DS</AT> <AT Name="UserDefined2"></AT> <AT Name="UserDefined3"></AT> <AT Name="SecurityClass">C1_AMT</AT> <AT Name="SubmissionGroup">1</AT> <DEFAULTPARENT>DS900</DEFAULTPARENT> <Note></Note> <Last_Edit_On>04 April 2025 17:23</Last_Edit_On> <Last_Edit_By>mehmiva</Last_Edit_By> <Last_Edit>Added as a sibling of DS900</Last_Edit> <DESCRIPTION Language="English">TEST CUSTOM 1_COMP</DESCRIPTION>
</MEMBER> <MEMBER>
<NODE>
<PARENT>DS900</PARENT> <CHILD>DS903</CHILD> <AT Name="AggrWeight">1</AT>
</NODE>
<LOG Type="ADD" Dimension="Custom1" Label="DS903" Action="Added as a sibling of DS900" User="mehmiva" Date="04 April 2025 17:23" />
`
	assert.Equal(t, want, got)
}

func TestBlock_CustomConfig(t *testing.T) {
	cfg := types.LabelsConfig{Start: 10, Prefix: "QA", Parent: "QA1", User: "tester"}
	g, err := NewGenerator(cfg, fixedClock)
	require.NoError(t, err)

	got, err := g.Block(4)
	require.NoError(t, err)
	assert.Contains(t, got, "<!-- Label 5 -->")
	assert.Contains(t, got, "<LABEL>QA14</LABEL>")
	assert.Contains(t, got, `<AT Name="UserDefined1">QA</AT>`)
	assert.Contains(t, got, "<PARENT>QA1</PARENT>")
	assert.Contains(t, got, `User="tester"`)
	assert.Contains(t, got, "C1_AMT", "unset fields use defaults")
}

func TestWriteAll(t *testing.T) {
	g := newTestGenerator(t)
	var buf bytes.Buffer

	n, err := g.WriteAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "# 1000 Unique C1 Labels\n\n<!-- Label 1 -->\n"))
	assert.Equal(t, 1000, strings.Count(out, "<!-- Label "))
	assert.Equal(t, 1000, strings.Count(out, "/>\n\n"), "each block is followed by one blank line")
	assert.Contains(t, out, "<LABEL>DS1902</LABEL>")
	assert.NotContains(t, out, "DS1903")
	assert.True(t, strings.HasSuffix(out, `Date="04 April 2025 17:23" />`+"\n\n"))
}

func TestWriteAll_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := newTestGenerator(t).WriteAll(&a)
	require.NoError(t, err)
	_, err = newTestGenerator(t).WriteAll(&b)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteAll_WriteError(t *testing.T) {
	_, err := newTestGenerator(t).WriteAll(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNewGenerator_NegativeCount(t *testing.T) {
	_, err := NewGenerator(types.LabelsConfig{Count: -1}, nil)
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	cfg := types.DefaultConfig().Labels
	cfg.OutputPath = filepath.Join(t.TempDir(), "labels.txt")
	cfg.Count = 3

	path, n, err := Generate(cfg, fixedClock)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "# 3 Unique C1 Labels\n\n"))
	assert.Equal(t, 3, strings.Count(content, "<!-- Label "))
	assert.Contains(t, content, "<LABEL>DS905</LABEL>")
}

func TestGenerate_Unwritable(t *testing.T) {
	cfg := types.DefaultConfig().Labels
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "labels.txt")

	_, _, err := Generate(cfg, fixedClock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}
