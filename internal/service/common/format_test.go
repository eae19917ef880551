package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintTableAlignsWideCharacters(t *testing.T) {
	var buf bytes.Buffer
	columns := []TableColumn{{Header: "ID"}, {Header: "名前"}}
	data := [][]string{
		{"i-1", "（名前なし）"},
		{"i-22", "web"},
	}

	FprintTable(&buf, "", columns, data)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID   名前         ", lines[0])
	assert.Equal(t, "---- ------------ ", lines[1])
	assert.Equal(t, "i-1  （名前なし） ", lines[2])
	assert.Equal(t, "i-22 web          ", lines[3])
}

func TestDisplayList(t *testing.T) {
	toTableData := func(items []string) ([]TableColumn, [][]string) {
		data := make([][]string, len(items))
		for i, item := range items {
			data[i] = []string{item}
		}
		return []TableColumn{{Header: "ID"}}, data
	}

	t.Run("Empty", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayList(&buf, []string{}, "一覧", toTableData, &DisplayOptions{EmptyMessage: "対象なし"})
		assert.Equal(t, "対象なし\n", buf.String())
	})

	t.Run("WithCount", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayList(&buf, []string{"i-1", "i-2"}, "一覧", toTableData, &DisplayOptions{ShowCount: true})
		assert.Contains(t, buf.String(), "\n一覧:\n")
		assert.Contains(t, buf.String(), "i-2")
		assert.True(t, strings.HasSuffix(buf.String(), "\n合計: 2件\n"))
	})
}
