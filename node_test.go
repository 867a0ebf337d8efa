package goose_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestArena_ID(t *testing.T) {
	t.Parallel()

	t.Run("assigns stable ids", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<p>one</p><p>two</p>")
		arena := goose.NewArena()

		first := arena.ID(doc)
		assert.NotZero(t, first)
		assert.Equal(t, first, arena.ID(doc))
		assert.NotEqual(t, first, arena.ID(doc.FirstChild))
	})

	t.Run("returns zero for nil", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, goose.NewArena().ID(nil))
	})
}

func TestArena_Clone(t *testing.T) {
	t.Parallel()

	t.Run("copies keep identity of originals", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<article id="a"><p>text</p></article>`)
		arena := goose.NewArena()
		article := findElement(doc, "article")

		cp := arena.Clone(doc)
		cpArticle := findElement(cp, "article")

		require.NotNil(t, cpArticle)
		assert.NotSame(t, article, cpArticle)
		assert.True(t, arena.Same(article, cpArticle))
		assert.True(t, arena.Same(doc, cp))
		assert.False(t, arena.Same(doc, cpArticle))
	})

	t.Run("mutating copy leaves original intact", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><p>keep</p></div>`)
		arena := goose.NewArena()

		cp := arena.Clone(doc)
		p := findElement(cp, "p")
		p.Parent.RemoveChild(p)

		assert.NotNil(t, findElement(doc, "p"))
		assert.Nil(t, findElement(cp, "p"))
	})
}

func TestArena_Same_Nil(t *testing.T) {
	t.Parallel()

	arena := goose.NewArena()
	doc := parse(t, "<p>x</p>")

	assert.True(t, arena.Same(nil, nil))
	assert.False(t, arena.Same(doc, nil))
}

func TestNodeText(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div>Hello <b>big</b><!-- hidden --> world</div>`)

	assert.Equal(t, "Hello big world", goose.NodeText(findElement(doc, "div")))
	assert.Empty(t, goose.NodeText(nil))
}

func TestCloneNode(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<a href="/x" class="c">link</a>`)
	a := findElement(doc, "a")

	cp := goose.CloneNode(a)

	assert.Nil(t, cp.Parent)
	assert.Equal(t, a.Attr, cp.Attr)
	assert.Equal(t, "link", goose.NodeText(cp))
}

func TestContains(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div><p>x</p></div><span></span>`)
	div := findElement(doc, "div")

	assert.True(t, goose.Contains(div, findElement(doc, "p")))
	assert.True(t, goose.Contains(div, div))
	assert.False(t, goose.Contains(div, findElement(doc, "span")))
}
