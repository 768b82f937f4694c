package blog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByQuarter(t *testing.T) {
	posts := []Post{
		{ID: "c", Date: "2024-05-02T00:00:00Z"},
		{ID: "a", Date: "2024-01-20T00:00:00Z"},
		{ID: "bad", Date: "not a date"},
		{ID: "b", Date: "2024-01-03T00:00:00Z"},
		{ID: "d", Date: "2023-12-31T23:59:59Z"},
	}

	quarters, err := GroupByQuarter(posts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post bad")

	require.Len(t, quarters, 3)
	assert.Equal(t, "2023-Q4", quarters[0].Name)
	assert.Equal(t, "2024-Q1", quarters[1].Name)
	assert.Equal(t, "2024-Q2", quarters[2].Name)

	var ids []string
	for _, p := range quarters[1].Posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "a"}, ids)
}

func TestGroupByQuarterClean(t *testing.T) {
	quarters, err := GroupByQuarter([]Post{{ID: "a", Date: "2024-01-20"}})
	assert.NoError(t, err)
	require.Len(t, quarters, 1)
	assert.Equal(t, "2024-Q1", quarters[0].Name)

	quarters, err = GroupByQuarter(nil)
	assert.NoError(t, err)
	assert.Empty(t, quarters)
}

func TestWriteArchive(t *testing.T) {
	sep := strings.Repeat("=", 80)

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, "2024-Q1", []string{"# First", "# Second"}))

	want := "# Posts from 2024-Q1\n\n" +
		"This file contains 2 posts from 2024-Q1.\n\n" +
		sep + "\n\n" +
		"# First" +
		"\n\n" + sep + "\n\n" +
		"# Second"
	assert.Equal(t, want, buf.String())
}

func TestWriteArchiveEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, "2020-Q3", nil))
	assert.Equal(t, "# Posts from 2020-Q3\n\nThis file contains 0 posts from 2020-Q3.\n\n"+strings.Repeat("=", 80)+"\n\n", buf.String())
}
