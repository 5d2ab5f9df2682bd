package schema

import (
	"testing"

	"github.com/cozy/prosemirror-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codepad/state"
)

func TestNew(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotNil(t, Schema)
}

func TestDocFromState_RoundTrip(t *testing.T) {
	for _, text := range []string{"", "plain", "func f() {\n\treturn\n}", "  a\n    b\n"} {
		doc, err := DocFromState(state.New(text))
		require.NoError(t, err)
		assert.Equal(t, text, TextFromDoc(doc))
	}
}

func TestTextFromDoc_Nil(t *testing.T) {
	assert.Equal(t, "", TextFromDoc(nil))
}

func TestParagraphWithHardBreak(t *testing.T) {
	br, err := Schema.Node("hard_break", nil, nil)
	require.NoError(t, err)

	para, err := Schema.Node("paragraph", nil, []*model.Node{Schema.Text("a"), br, Schema.Text("b")})
	require.NoError(t, err)
	assert.Equal(t, "ab", para.TextContent())
	assert.Equal(t, 5, para.NodeSize())

	doc, err := Schema.Node("doc", nil, []*model.Node{para})
	require.NoError(t, err)
	assert.Equal(t, "ab", TextFromDoc(doc))
}
