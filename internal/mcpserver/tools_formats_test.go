package mcpserver

import (
	"context"
	"testing"

	"github.com/erraggy/wordfmt/wordformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFormatsTool(t *testing.T) {
	setTestConfig(t, defaultTestConfig(), nil)

	result, output, err := handleListFormats(context.Background(), &mcp.CallToolRequest{}, listFormatsInput{})
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "UPPER_UNDERSCORE", output.DefaultSource)
	require.Len(t, output.Formats, len(wordformat.Formats()))
	assert.Equal(t, formatSummary{Name: "lower-hyphen", GoName: "LowerHyphen", Kind: "case", Example: "lower-hyphen"}, output.Formats[0])
	assert.Equal(t, formatSummary{Name: "PHRASE", GoName: "Phrase", Kind: "phrase", Example: "Upper word name"}, output.Formats[7])
}
