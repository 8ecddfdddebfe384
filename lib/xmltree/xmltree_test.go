package xmltree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testOpts = Options{
	ListTags: []string{"rowset", "row"},
	KeyAttrs: []string{"itemID", "name"},
}

func TestSingletonFoldsToSequence(t *testing.T) {
	doc, err := Parse([]byte(`
		<root>
			<rowset name="things">
				<row itemID="7" label="only"/>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	rowset := doc.Root.Map("rowset")["things"]
	require.NotNil(t, rowset)
	require.Len(t, rowset.Seq("row"), 1)
	require.Equal(t, "only", rowset.Map("row")["7"].Attr("label"))
}

func TestKeyAttrPriority(t *testing.T) {
	// rows carry both priority attributes, the earlier one must win
	doc, err := Parse([]byte(`
		<root>
			<rowset name="things">
				<row itemID="1" name="a"/>
				<row itemID="2" name="b"/>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	rows := doc.Root.Map("rowset")["things"].Map("row")
	require.Len(t, rows, 2)
	require.Equal(t, "a", rows["1"].Attr("name"))
	require.Equal(t, "b", rows["2"].Attr("name"))
	require.Nil(t, rows["a"])
}

func TestGroupWithoutKeyAttrStaysSequence(t *testing.T) {
	doc, err := Parse([]byte(`
		<root>
			<rowset name="things">
				<row label="first"/>
				<row label="second"/>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	rowset := doc.Root.Map("rowset")["things"]
	require.Nil(t, rowset.Map("row"))

	var labels []string
	for _, row := range rowset.Seq("row") {
		labels = append(labels, row.Attr("label"))
	}
	require.Empty(t, cmp.Diff([]string{"first", "second"}, labels))
}

func TestMemberMissingKeyAttr(t *testing.T) {
	doc, err := Parse([]byte(`
		<root>
			<rowset name="things">
				<row itemID="1"/>
				<row label="keyless"/>
				<row itemID="3"/>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	rowset := doc.Root.Map("rowset")["things"]
	require.Len(t, rowset.Seq("row"), 3)
	require.Len(t, rowset.Map("row"), 2)
	require.Equal(t, "keyless", rowset.Seq("row")[1].Attr("label"))
}

func TestDuplicateKeysKeepLast(t *testing.T) {
	doc, err := Parse([]byte(`
		<root>
			<rowset name="things">
				<row itemID="1" label="stale"/>
				<row itemID="1" label="fresh"/>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	rows := doc.Root.Map("rowset")["things"].Map("row")
	require.Len(t, rows, 1)
	require.Equal(t, "fresh", rows["1"].Attr("label"))
}

func TestNestedRowsets(t *testing.T) {
	doc, err := Parse([]byte(`
		<root>
			<rowset name="outer">
				<row itemID="100">
					<rowset name="contents">
						<row itemID="200"/>
					</rowset>
				</row>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	outer := doc.Root.Map("rowset")["outer"].Map("row")["100"]
	require.NotNil(t, outer)
	inner := outer.Map("rowset")["contents"]
	require.NotNil(t, inner)
	require.NotNil(t, inner.Map("row")["200"])
}

func TestCharacterDataText(t *testing.T) {
	doc, err := Parse([]byte(`
		<root>
			<stamp> 2014-01-01 00:00:00 </stamp>
			<rowset name="messages">
				<row itemID="1"><![CDATA[Fly <safe>.]]></row>
			</rowset>
		</root>
	`), testOpts)
	require.NoError(t, err)

	require.Equal(t, "2014-01-01 00:00:00", doc.Root.ChildText("stamp"))
	row := doc.Root.Map("rowset")["messages"].Map("row")["1"]
	require.Equal(t, "Fly <safe>.", row.Text)
}

func TestMalformedInput(t *testing.T) {
	_, err := Parse([]byte(`<root><unclosed></root>`), testOpts)
	require.Error(t, err)

	_, err = Parse([]byte(`not xml at all`), testOpts)
	require.Error(t, err)

	_, err = Parse([]byte(`<?xml version="1.0"?>`), testOpts)
	require.Error(t, err)
}

func TestNilSafeAccessors(t *testing.T) {
	var n *Node
	require.Nil(t, n.Child("anything"))
	require.Empty(t, n.ChildText("anything"))
	require.Nil(t, n.Seq("row"))
	require.Nil(t, n.Map("row"))
	require.Empty(t, n.Attr("name"))
	require.False(t, n.HasAttr("name"))

	doc, err := Parse([]byte(`<root><leaf value=""/></root>`), testOpts)
	require.NoError(t, err)
	leaf := doc.Root.Child("leaf")
	require.True(t, leaf.HasAttr("value"))
	require.False(t, leaf.HasAttr("missing"))
}
