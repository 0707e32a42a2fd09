package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuvoedward/biblia/internal/importer"
)

func TestParseChapter(t *testing.T) {
	t.Parallel()

	t.Run("extracts numbered paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="texto-columna">
	<p>1 En el principio creó Dios los cielos y la tierra.</p>
	<p>  2   Y la tierra estaba desordenada y vacía.  </p>
	<p></p>
	<p>   </p>
	<p>3 Y dijo Dios: Sea la luz; y fue la luz.</p>
</div>
</body></html>`

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 3)
		assert.Equal(t, importer.ParsedVerse{Number: 1, Text: "En el principio creó Dios los cielos y la tierra."}, result.Verses[0])
		assert.Equal(t, importer.ParsedVerse{Number: 2, Text: "Y la tierra estaba desordenada y vacía."}, result.Verses[1])
		assert.Equal(t, 3, result.Verses[2].Number)
		assert.Zero(t, result.Dropped)
	})

	t.Run("accepts no-break space after the number", func(t *testing.T) {
		t.Parallel()

		html := "<div class=\"texto-columna\"><p>16&nbsp;Porque de tal manera amó Dios al mundo</p></div>"

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 1)
		assert.Equal(t, 16, result.Verses[0].Number)
		assert.Equal(t, "Porque de tal manera amó Dios al mundo", result.Verses[0].Text)
	})

	t.Run("unnumbered first paragraph becomes verse 1", func(t *testing.T) {
		t.Parallel()

		html := `<div class="texto-columna"><p>Bienaventurado el varón que no anduvo en consejo de malos</p><p>2 Sino que en la ley de Jehová está su delicia</p></div>`

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 2)
		assert.Equal(t, 1, result.Verses[0].Number)
		assert.Equal(t, "Bienaventurado el varón que no anduvo en consejo de malos", result.Verses[0].Text)
		assert.Equal(t, 2, result.Verses[1].Number)
	})

	t.Run("unnumbered paragraph after a verse is dropped and counted", func(t *testing.T) {
		t.Parallel()

		html := `<div class="texto-columna">
<p>1 Primer versículo</p>
<p>continuación sin número</p>
<p>2 Segundo versículo</p>
<p>otra continuación</p>
</div>`

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 2)
		assert.Equal(t, "Primer versículo", result.Verses[0].Text)
		assert.Equal(t, "Segundo versículo", result.Verses[1].Text)
		assert.Equal(t, 2, result.Dropped)
	})

	t.Run("keeps duplicate and unordered numbers as found", func(t *testing.T) {
		t.Parallel()

		html := `<div class="texto-columna"><p>3 tres</p><p>1 uno</p><p>1 otra vez uno</p></div>`

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 3)
		assert.Equal(t, []int{3, 1, 1}, []int{result.Verses[0].Number, result.Verses[1].Number, result.Verses[2].Number})
	})

	t.Run("paragraph with an inner line break does not match", func(t *testing.T) {
		t.Parallel()

		html := "<div class=\"texto-columna\"><p>1 Primera línea\nsegunda línea</p></div>"

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 1)
		assert.Equal(t, 1, result.Verses[0].Number)
		assert.Equal(t, "1 Primera línea\nsegunda línea", result.Verses[0].Text)
	})

	t.Run("prefers texto-columna over main", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>9 desde main</p></main><div class="texto-columna"><p>1 desde columna</p></div>`

		result, err := importer.ParseChapter(strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, result.Verses, 1)
		assert.Equal(t, "desde columna", result.Verses[0].Text)
	})

	t.Run("falls back to main then container", func(t *testing.T) {
		t.Parallel()

		fromMain, err := importer.ParseChapter(strings.NewReader(`<div class="container"><p>7 contenedor</p></div><main><p>5 principal</p></main>`))
		require.NoError(t, err)
		require.Len(t, fromMain.Verses, 1)
		assert.Equal(t, 5, fromMain.Verses[0].Number)

		fromContainer, err := importer.ParseChapter(strings.NewReader(`<div class="container wide"><p>7 contenedor</p></div>`))
		require.NoError(t, err)
		require.Len(t, fromContainer.Verses, 1)
		assert.Equal(t, 7, fromContainer.Verses[0].Number)
	})

	t.Run("no content container yields no verses", func(t *testing.T) {
		t.Parallel()

		result, err := importer.ParseChapter(strings.NewReader(`<body><p>1 fuera del contenido</p></body>`))

		require.NoError(t, err)
		assert.Empty(t, result.Verses)
	})
}
